package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "trims entries", raw: "js, go", want: []string{"js", "go"}},
		{name: "drops empty entries", raw: " ,js,, go ,", want: []string{"js", "go"}},
		{name: "blank", raw: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkills(tt.raw))
		})
	}
}

func TestPatchApplyIgnoresAbsentAndBlank(t *testing.T) {
	existing := Profile{
		User:    "u1",
		Company: "Acme",
		Status:  "Dev",
		Skills:  []string{"js"},
		Social:  Social{Twitter: "@ana", YouTube: "ana-yt"},
	}

	got := Patch{
		Company: strPtr("   "),
		Bio:     strPtr(" Hello "),
		Social:  SocialPatch{YouTube: strPtr("new-yt")},
	}.Apply(existing)

	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Hello", got.Bio)
	assert.Equal(t, "Dev", got.Status)
	assert.Equal(t, []string{"js"}, got.Skills)
	assert.Equal(t, Social{Twitter: "@ana", YouTube: "new-yt"}, got.Social)
}

func TestPatchApplyDoesNotModifyExisting(t *testing.T) {
	existing := Profile{Status: "Dev", Skills: []string{"js"}}

	got := Patch{Status: strPtr("Lead"), Skills: []string{"go", "sql"}}.Apply(existing)
	got.Skills[0] = "rust"

	assert.Equal(t, "Dev", existing.Status)
	assert.Equal(t, []string{"js"}, existing.Skills)
	assert.Equal(t, "Lead", got.Status)
}

func TestUpsertInputPatch(t *testing.T) {
	p := UpsertInput{Status: strPtr("Dev"), Skills: strPtr("js, go"), LinkedIn: strPtr("ana")}.Patch()

	assert.Equal(t, []string{"js", "go"}, p.Skills)
	assert.Equal(t, "ana", *p.Social.LinkedIn)
	assert.Nil(t, p.Company)

	assert.Nil(t, UpsertInput{}.Patch().Skills)
}
