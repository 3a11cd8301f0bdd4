package profile

import (
	"slices"
	"strings"
)

// SocialPatch carries the optional social links of an upsert.
type SocialPatch struct {
	YouTube   *string
	Facebook  *string
	Twitter   *string
	Instagram *string
	LinkedIn  *string
}

// Patch is a partial profile update. Nil or blank fields leave the stored value alone;
// a nil Skills slice means "not provided".
type Patch struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GitHubUsername *string
	Skills         []string
	Social         SocialPatch
}

// Apply returns existing with the patch merged in. existing is not modified.
func (p Patch) Apply(existing Profile) Profile {
	out := existing
	out.Skills = slices.Clone(existing.Skills)
	out.Experience = slices.Clone(existing.Experience)
	out.Education = slices.Clone(existing.Education)

	set(&out.Company, p.Company)
	set(&out.Website, p.Website)
	set(&out.Location, p.Location)
	set(&out.Bio, p.Bio)
	set(&out.Status, p.Status)
	set(&out.GitHubUsername, p.GitHubUsername)

	if p.Skills != nil {
		out.Skills = slices.Clone(p.Skills)
	}

	set(&out.Social.YouTube, p.Social.YouTube)
	set(&out.Social.Facebook, p.Social.Facebook)
	set(&out.Social.Twitter, p.Social.Twitter)
	set(&out.Social.Instagram, p.Social.Instagram)
	set(&out.Social.LinkedIn, p.Social.LinkedIn)

	return out
}

func set(dst *string, v *string) {
	if v == nil {
		return
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		*dst = trimmed
	}
}

// ParseSkills splits a comma separated list, trimming entries and dropping empty ones.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
