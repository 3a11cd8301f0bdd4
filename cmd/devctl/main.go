// Command devctl runs operator tasks against the API's stores and token codec.
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/redmonkez12/devconnector-api/internal/auth"
	"github.com/redmonkez12/devconnector-api/internal/config"
	"github.com/redmonkez12/devconnector-api/internal/database"
)

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func main() {
	rootCmd := &cobra.Command{
		Use:           "devctl",
		Short:         "Operator tasks for the devconnector API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the users table and the document store indexes",
		RunE:  runMigrate,
	}
	migrateCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue and inspect session tokens",
	}

	issueCmd := &cobra.Command{
		Use:   "issue <user-id>",
		Short: "Issue a session token for a user",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenIssue,
	}

	verifyCmd := &cobra.Command{
		Use:   "verify <token>",
		Short: "Verify a session token and print its subject",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenVerify,
	}

	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random 32 byte PASETO_KEY",
		RunE:  runKeygen,
	}

	tokenCmd.AddCommand(issueCmd, verifyCmd)
	rootCmd.AddCommand(migrateCmd, tokenCmd, keygenCmd)

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if !yes {
		ok, err := confirm("Run migrations?", fmt.Sprintf("postgres %s/%s, mongo %s", cfg.Database.Host, cfg.Database.DBName, cfg.Mongo.Database))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	db, err := database.OpenPostgres(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	printSuccess("users table ready")

	client, mdb, err := database.OpenMongo(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	if err := database.EnsureMongoIndexes(ctx, mdb); err != nil {
		return err
	}
	printSuccess("document indexes ready")

	return nil
}

func runTokenIssue(cmd *cobra.Command, args []string) error {
	userID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", args[0], err)
	}

	codec, err := loadCodec()
	if err != nil {
		return err
	}

	token, err := codec.Issue(userID.String())
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	printTitle("Session token")
	printField("user", userID.String())
	printField("expires in", codec.TTL().String())
	fmt.Println(token)
	return nil
}

func runTokenVerify(cmd *cobra.Command, args []string) error {
	codec, err := loadCodec()
	if err != nil {
		return err
	}

	subject, err := codec.Verify(args[0])
	if err != nil {
		return fmt.Errorf("verify token: %w", err)
	}

	printSuccess("Token is valid")
	printField("user", subject)
	return nil
}

func runKeygen(cmd *cobra.Command, args []string) error {
	key, err := generateKey(32)
	if err != nil {
		return err
	}
	fmt.Printf("PASETO_KEY=%s\n", key)
	return nil
}

func loadCodec() (*auth.TokenCodec, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return auth.NewTokenCodec(cfg.Auth)
}

// generateKey returns n random characters; the config reads the key as raw bytes.
func generateKey(n int) (string, error) {
	out := make([]byte, n)
	limit := big.NewInt(int64(len(keyAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate key: %w", err)
		}
		out[i] = keyAlphabet[idx.Int64()]
	}
	return string(out), nil
}
