// ABOUTME: Install Claude Code skill for trainer
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the trainer skill for Claude Code.

This copies the skill definition to ~/.claude/skills/trainer/
so Claude Code can use trainer commands contextually.`,
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(home, skillSkipConfirm, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}

func installSkill(home string, skipConfirm bool, in io.Reader, out io.Writer) error {
	skillDir := filepath.Join(home, ".claude", "skills", "trainer")
	skillPath := filepath.Join(skillDir, "SKILL.md")

	bold.Fprintln(out, "Trainer skill for Claude Code")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "This will install the trainer skill, enabling Claude Code to:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  • Start and track workouts")
	fmt.Fprintln(out, "  • Show personal bests and weekly totals")
	fmt.Fprintln(out, "  • Fetch AI training recommendations")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Destination:")
	fmt.Fprintf(out, "  %s\n", skillPath)
	fmt.Fprintln(out)

	if _, err := os.Stat(skillPath); err == nil {
		fmt.Fprintln(out, "Note: A skill file already exists and will be overwritten.")
		fmt.Fprintln(out)
	}

	if !skipConfirm && !confirm(in, out, "Install the trainer skill?") {
		fmt.Fprintln(out, "Installation canceled.")
		return nil
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}
	if err := os.MkdirAll(skillDir, 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	success(out, "Installed trainer skill successfully!")
	fmt.Fprintln(out, "Try asking Claude: \"Start a push workout\" or \"How is my bench press progressing?\"")
	return nil
}
