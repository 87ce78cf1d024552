package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wonny/qvscreen/internal/criteria"
)

var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "Inspect and validate criteria files",
}

var criteriaValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a criteria YAML file",
	Long: `Loads a criteria file on top of the defaults and validates it:
unknown fields, weight signs, band anchors and DCF assumptions.

Example:
  qvscreen criteria validate dividend.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCriteriaValidate,
}

var criteriaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the built-in criteria as YAML",
	RunE:  runCriteriaShow,
}

func init() {
	rootCmd.AddCommand(criteriaCmd)
	criteriaCmd.AddCommand(criteriaValidateCmd)
	criteriaCmd.AddCommand(criteriaShowCmd)
}

func runCriteriaValidate(cmd *cobra.Command, args []string) error {
	c, err := criteria.Load(args[0])
	if err != nil {
		return err
	}

	hash, err := criteria.Hash(c)
	if err != nil {
		return err
	}

	fmt.Printf("OK: %s\n", args[0])
	fmt.Printf("  name: %s\n", c.Name)
	fmt.Printf("  hash: %s\n", hash)
	return nil
}

func runCriteriaShow(cmd *cobra.Command, args []string) error {
	c := criteria.Default()

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()

	return enc.Encode(c)
}
