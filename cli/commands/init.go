package commands

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/dragonfly/cli/internal/config"
	"github.com/satishbabariya/dragonfly/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a new project",
	Long: `Scaffold a new dragonfly project.

This command will:
- Ask for a project name and datasource settings
- Write a .dragonfly.yaml configuration file
- Write a starter app.dfly model file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// starterModel is the schema new projects start from.
const starterModel = `enum Role {
  Admin
  Member
}

model User {
  name: String
  role: Role
  posts: [Post]
}

model Post {
  title: String
  content: String
}
`

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	ui.PrintHeader("dragonfly", "New project")

	project := struct {
		Name     string
		Provider string
	}{}

	questions := []*survey.Question{
		{
			Name: "name",
			Prompt: &survey.Input{
				Message: "Project name:",
				Default: defaultProjectName(dir),
			},
			Validate: survey.Required,
		},
		{
			Name: "provider",
			Prompt: &survey.Select{
				Message: "Datasource provider:",
				Options: []string{"postgresql", "cockroachdb", "mysql", "sqlserver", "mongodb", "sqlite"},
				Default: "postgresql",
			},
		},
	}

	if err := survey.Ask(questions, &project); err != nil {
		return err
	}

	cfg := &config.Config{}
	cfg.Datasource.Provider = project.Provider

	if project.Provider == "sqlite" {
		prompt := &survey.Input{Message: "Database file:", Default: "dev.db"}

		if err := survey.AskOne(prompt, &cfg.Datasource.Path); err != nil {
			return err
		}
	} else {
		credentials := struct {
			Host     string
			Port     int
			User     string
			Password string
			Database string
		}{}

		questions := []*survey.Question{
			{
				Name:   "host",
				Prompt: &survey.Input{Message: "Host:", Default: "127.0.0.1"},
			},
			{
				Name: "port",
				Prompt: &survey.Input{
					Message: "Port:",
					Default: strconv.Itoa(config.DefaultPort(project.Provider, 0)),
				},
			},
			{
				Name:     "user",
				Prompt:   &survey.Input{Message: "User:"},
				Validate: survey.Required,
			},
			{
				Name:   "password",
				Prompt: &survey.Password{Message: "Password:"},
			},
			{
				Name:   "database",
				Prompt: &survey.Input{Message: "Database:", Default: project.Name},
			},
		}

		if err := survey.Ask(questions, &credentials); err != nil {
			return err
		}

		cfg.Datasource.Host = credentials.Host
		cfg.Datasource.Port = credentials.Port
		cfg.Datasource.User = credentials.User
		cfg.Datasource.Password = credentials.Password
		cfg.Datasource.Database = credentials.Database
	}

	if err := config.AppFs.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	configPath := filepath.Join(dir, ".dragonfly.yaml")

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	modelPath := filepath.Join(dir, "app.dfly")

	if err := afero.WriteFile(config.AppFs, modelPath, []byte(starterModel), 0o644); err != nil {
		return err
	}

	ui.PrintSuccess("Created `%s`.", configPath)
	ui.PrintSuccess("Created `%s`.", modelPath)

	ui.PrintSection("Next steps")
	ui.PrintList([]string{
		"Edit " + modelPath,
		"Run `dragonfly check " + modelPath + "`",
		"Run `dragonfly build " + modelPath + "`",
	})

	return nil
}

// defaultProjectName derives a name from the target directory, falling
// back to the working directory for in-place scaffolds.
func defaultProjectName(dir string) string {
	name := filepath.Base(dir)
	if name != "." && name != string(filepath.Separator) {
		return name
	}

	if wd, err := os.Getwd(); err == nil {
		return filepath.Base(wd)
	}

	return "app"
}
