package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awsinv/awsinv/internal/config"
	"github.com/awsinv/awsinv/inventory"
)

var (
	listService string
	listRegion  string
	listProfile string
	listOutput  string
	listConfig  string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources of one AWS service in one region",
	Long: `List the resources of one AWS service in one region as an aligned
table. S3 buckets are listed globally and filtered down to the
buckets whose location matches the requested region.`,
	Example: `  awsinv list --service ec2 --region us-east-1
  awsinv list --service s3 --region eu-west-1
  awsinv list --service dynamodb --region us-east-1 --output json
  awsinv list --service rds --region us-west-2 --profile prod`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listService, "service", "s", "", "AWS service to list ("+inventory.SupportedNames()+")")
	listCmd.Flags().StringVarP(&listRegion, "region", "r", "", "AWS region to list")
	listCmd.Flags().StringVarP(&listProfile, "profile", "p", "", "AWS shared config profile")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Output format: table, json, csv")
	listCmd.Flags().StringVar(&listConfig, "config", "", "Path to the defaults file (default $HOME/.awsinv.yaml)")
	_ = listCmd.MarkFlagRequired("service")
}

func runList(cmd *cobra.Command, args []string) error {
	path := listConfig
	if path == "" {
		path = config.DefaultPath()
	}
	defaults, err := config.Load(path)
	if err != nil {
		return err
	}

	// Flags win over the defaults file.
	listCommand := &ListCommand{
		Service: listService,
		Region:  firstOf(listRegion, defaults.Region),
		Profile: firstOf(listProfile, defaults.Profile),
		Output:  firstOf(listOutput, defaults.Output, "table"),
	}

	if strings.TrimSpace(listCommand.Region) == "" {
		return fmt.Errorf("a region is required (--region or the defaults file)")
	}

	validOutputs := []string{"table", "json", "csv"}
	if !contains(validOutputs, listCommand.Output) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			listCommand.Output, strings.Join(validOutputs, ", "))
	}

	return listCommand.Run(cmd.Context())
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
