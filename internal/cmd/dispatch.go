package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ghadmin/pkg/config"
	"ghadmin/pkg/dispatch"
)

var (
	dispatchAction      string
	dispatchOrg         string
	dispatchTeam        string
	dispatchRepo        string
	dispatchUser        string
	dispatchPermission  string
	dispatchRepoName    string
	dispatchRepoPrivate string
	dispatchFromEnv     bool
	dispatchDryRun      bool
	dispatchScript      string
	dispatchInterpreter string
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Validate a trigger request and run the external admin script",
	Long: `Validate an invocation request and dispatch it to the external admin
script as a typed argument list.

The request carries an action, an organization, and the resource fields the
action needs. Required fields (action, org, repo) and enum membership are
checked before anything is spawned, and the script's exit code becomes
ghadmin's own exit code.

The argument list is always built in a fixed order and handed to the script
as an argument vector. No shell is involved, so values containing spaces or
metacharacters are passed through untouched.

With --from-env the request is read from the GHADMIN_* environment
variables the CI trigger exports; explicit flags still win over the
environment. The authentication token is not handled here at all: the
script reads TOKEN from the environment it inherits.

Examples:
  ghadmin dispatch --action create-team --org example-org --repo r1 --team platform
  ghadmin dispatch --action create-repo --org example-org --repo myrepo \
    --repo-name myrepo2 --repo-private true
  ghadmin dispatch --from-env
  ghadmin dispatch --from-env --dry-run`,
	RunE: runDispatch,
}

func init() {
	dispatchCmd.Flags().StringVar(&dispatchAction, "action", "", "Action to perform (create-team, delete-team, add-repo, remove-repo, add-user, remove-user, create-repo, user-access)")
	dispatchCmd.Flags().StringVar(&dispatchOrg, "org", "", "GitHub organization name")
	dispatchCmd.Flags().StringVar(&dispatchTeam, "team", "", "Team name")
	dispatchCmd.Flags().StringVar(&dispatchRepo, "repo", "", "Repository name")
	dispatchCmd.Flags().StringVar(&dispatchUser, "user", "", "GitHub username (not an email address)")
	dispatchCmd.Flags().StringVar(&dispatchPermission, "permission", string(dispatch.PermissionNone), "Permission level (nil, pull, triage, push, maintain, admin); nil means omitted")
	dispatchCmd.Flags().StringVar(&dispatchRepoName, "repo-name", "", "Name for a new repository (create-repo only)")
	dispatchCmd.Flags().StringVar(&dispatchRepoPrivate, "repo-private", "false", "Create the repository as private (true or false)")
	dispatchCmd.Flags().BoolVar(&dispatchFromEnv, "from-env", false, "Read the request from GHADMIN_* environment variables")
	dispatchCmd.Flags().BoolVar(&dispatchDryRun, "dry-run", false, "Print the command line without running the script")
	dispatchCmd.Flags().StringVar(&dispatchScript, "script", "", "Path of the external admin script (overrides config)")
	dispatchCmd.Flags().StringVar(&dispatchInterpreter, "interpreter", "", "Interpreter for the admin script (overrides config)")
	rootCmd.AddCommand(dispatchCmd)
}

func runDispatch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load ghadmin config: %w", err)
	}

	req := buildDispatchRequest(cmd)

	d := dispatch.New()
	d.Script = cfg.Dispatcher.Script
	d.Interpreter = cfg.Dispatcher.Interpreter
	d.AllowedOrgs = cfg.Dispatcher.AllowedOrgs
	if dispatchScript != "" {
		d.Script = dispatchScript
	}
	if cmd.Flags().Changed("interpreter") {
		d.Interpreter = dispatchInterpreter
	}

	if err := req.Validate(d.AllowedOrgs); err != nil {
		return err
	}

	commandLine := strings.Join(d.CommandLine(req), " ")
	if dispatchDryRun {
		fmt.Printf("🔍 Dry-run: would run: %s\n", commandLine)
		return nil
	}

	fmt.Printf("🚀 Running: %s\n", commandLine)
	if err := d.Dispatch(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Printf("✅ %s completed\n", req.Action)
	return nil
}

// buildDispatchRequest assembles the request from flags, or from the trigger
// environment when --from-env is set. Flags the user typed always override
// the environment.
func buildDispatchRequest(cmd *cobra.Command) *dispatch.Request {
	req := dispatch.NewRequest()
	if dispatchFromEnv {
		req = dispatch.RequestFromEnv()
	}

	setIfChanged := func(flag string, apply func()) {
		if !dispatchFromEnv || cmd.Flags().Changed(flag) {
			apply()
		}
	}

	setIfChanged("action", func() { req.Action = dispatch.Action(dispatchAction) })
	setIfChanged("org", func() { req.Org = dispatchOrg })
	setIfChanged("team", func() { req.Team = dispatchTeam })
	setIfChanged("repo", func() { req.Repo = dispatchRepo })
	setIfChanged("user", func() { req.User = dispatchUser })
	setIfChanged("permission", func() { req.Permission = dispatch.Permission(dispatchPermission) })
	setIfChanged("repo-name", func() { req.RepoName = dispatchRepoName })
	setIfChanged("repo-private", func() { req.RepoPrivate = dispatchRepoPrivate })

	return req
}
