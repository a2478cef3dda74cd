package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var citizenshipsCmd = &cobra.Command{
	Use:   "citizenships",
	Short: "Inspect the citizenship reference table",
}

var citizenshipsCheckCmd = &cobra.Command{
	Use:   "check <code>",
	Args:  cobra.ExactArgs(1),
	Short: "Load the citizenship table and print the entry for a code",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := loadEnvironment()

		service, err := loadCitizenships(cmd, env)
		if err != nil {
			console.WithError(err).Error("cannot load citizenship table")
			return err
		}

		entry, ok := service.Get(args[0])
		if !ok {
			console.WithField("code", args[0]).Warn("code not in citizenship table")
			return fmt.Errorf("citizenship code %q not found", args[0])
		}

		console.WithFields(logrus.Fields{
			"source": env.internalConfig.Resources.CitizenshipCsvFilename,
		}).Debug("citizenship table loaded")
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", entry.Code, entry.Explanation, entry.From, entry.Through)
		return nil
	},
}

func init() {
	citizenshipsCmd.AddCommand(citizenshipsCheckCmd)
	rootCmd.AddCommand(citizenshipsCmd)
}
