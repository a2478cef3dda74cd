package cmd

import (
	"fmt"
	"patient-sync-service/internal/app/services/shared/jwtmanager"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Args:  cobra.ExactArgs(1),
	Short: "Issue a bearer token signed with AUTH_JWT_SECRET",
	Long: `Prints an HS256 bearer token for the given subject. The subject is what the
upload quota is counted against.

patientsync token ops-team --ttl 2h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := loadEnvironment()

		ttl := tokenTTL
		if ttl <= 0 {
			ttl = time.Duration(env.internalConfig.Auth.TokenTTLInMinutes) * time.Minute
		}
		manager, err := jwtmanager.NewJWTManager(env.internalConfig.Auth.JWTSecret, ttl, env.log)
		if err != nil {
			console.WithError(err).Error("cannot issue token")
			return err
		}

		out, err := manager.CreateToken(cmd.Context(), &jwtmanager.CreateTokenInput{Subject: args[0]})
		if err != nil {
			console.WithError(err).Error("cannot issue token")
			return err
		}

		console.WithFields(logrus.Fields{"subject": args[0], "expires_at": out.ExpiresAt.Format(time.RFC3339)}).Info("token issued")
		fmt.Fprintln(cmd.OutOrStdout(), out.Token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime, defaults to AUTH_TOKEN_TTL_IN_MINUTES")
	rootCmd.AddCommand(tokenCmd)
}
