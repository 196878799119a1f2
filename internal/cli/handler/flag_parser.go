package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/trench/internal/types"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// RequireFlags returns an error naming every flag in names the user did not set
func RequireFlags(cmd *cobra.Command, names ...string) error {
	var missing []string
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) not set: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseClientID extracts a client ID from a flag
func (p *FlagParser) ParseClientID(flagName string) (types.ClientID, error) {
	id, err := p.ParseID(flagName)
	return types.ClientIDFromInt(id), err
}

// ParseJobID extracts a job ID from a flag
func (p *FlagParser) ParseJobID(flagName string) (types.JobID, error) {
	id, err := p.ParseID(flagName)
	return types.JobIDFromInt(id), err
}

// ParseInvoiceID extracts an invoice ID from a flag
func (p *FlagParser) ParseInvoiceID(flagName string) (types.InvoiceID, error) {
	id, err := p.ParseID(flagName)
	return types.InvoiceIDFromInt(id), err
}

// ParseID extracts a positive int flag
func (p *FlagParser) ParseID(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", flagName)
	}
	return value, nil
}

// ParseString extracts a string flag as typed. Emptiness is left to the
// services so it is reported as a validation error.
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return value, nil
}

// ParseFloat extracts a float flag
func (p *FlagParser) ParseFloat(flagName string) (float64, error) {
	value, err := p.cmd.Flags().GetFloat64(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return value, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	if jsonOutput && quietMode {
		return false, false, fmt.Errorf("--json and --quiet cannot be used together")
	}

	return jsonOutput, quietMode, nil
}
