package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blang/semver"
	"github.com/spf13/cobra"

	"github.com/ukeSJTU/termoj/api"
	"github.com/ukeSJTU/termoj/types"
)

// exit codes, stable for scripts that wrap the tool
const (
	exitOK       = 0 // accepted, or nothing went wrong
	exitError    = 1 // command failure, cancelled or exhausted watch
	exitRejected = 2 // a terminal verdict other than accepted
)

var apiDump bool

func main() {
	log.SetFlags(0)

	cmdTermoj := &cobra.Command{
		Use:   "termoj",
		Short: "command-line interface to the SJTU ACM online judge",
		Long: "A command-line tool for the SJTU ACM class online judge:\n" +
			"browse problems, submit solutions, and watch verdicts.",
	}
	cmdTermoj.PersistentFlags().BoolVarP(&apiDump, "api-dump", "", false, "log full API requests and responses")

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "print the version of termoj and check the server's requirements",
		Run:   CommandVersion,
	}
	cmdTermoj.AddCommand(cmdVersion)

	cmdAuth := &cobra.Command{
		Use:   "auth",
		Short: "log in and out of the judge",
	}
	cmdTermoj.AddCommand(cmdAuth)

	cmdLogin := &cobra.Command{
		Use:   "login <token>",
		Short: "store an access token and verify it",
		Long: "   Create a personal access token in the judge's web interface,\n" +
			"   then pass it here. The token is checked against the server and\n" +
			"   saved to the termoj config file for later commands.",
		Run: CommandLogin,
	}
	cmdAuth.AddCommand(cmdLogin)

	cmdWhoami := &cobra.Command{
		Use:   "whoami",
		Short: "show who the stored token belongs to",
		Run:   CommandWhoami,
	}
	cmdAuth.AddCommand(cmdWhoami)

	cmdLogout := &cobra.Command{
		Use:   "logout",
		Short: "forget the stored token",
		Run:   CommandLogout,
	}
	cmdAuth.AddCommand(cmdLogout)

	cmdConfig := &cobra.Command{
		Use:   "config",
		Short: "view and change client settings",
	}
	cmdTermoj.AddCommand(cmdConfig)

	cmdConfigView := &cobra.Command{
		Use:   "view",
		Short: "show all settings and where they are stored",
		Run:   CommandConfigView,
	}
	cmdConfig.AddCommand(cmdConfigView)

	cmdConfigGet := &cobra.Command{
		Use:   "get <option>",
		Short: "print one setting",
		Run:   CommandConfigGet,
	}
	cmdConfig.AddCommand(cmdConfigGet)

	cmdConfigSet := &cobra.Command{
		Use:   "set <option> <value>",
		Short: "change one setting",
		Long: "   Options:\n" +
			"     display_mode   plain or color\n" +
			"     host           base URL of the judge API",
		Run: CommandConfigSet,
	}
	cmdConfig.AddCommand(cmdConfigSet)

	cmdConfigReset := &cobra.Command{
		Use:   "reset",
		Short: "restore default settings, keeping the token",
		Run:   CommandConfigReset,
	}
	cmdConfig.AddCommand(cmdConfigReset)

	cmdCourse := &cobra.Command{
		Use:   "course",
		Short: "browse and join courses",
	}
	cmdTermoj.AddCommand(cmdCourse)

	cmdCourseList := &cobra.Command{
		Use:   "list",
		Short: "list courses on the judge",
		Run:   CommandCourseList,
	}
	cmdCourseList.Flags().StringP("keyword", "k", "", "filter by name keyword")
	cmdCourseList.Flags().IntP("term", "", 0, "filter by term id")
	cmdCourseList.Flags().IntP("tag", "", 0, "filter by tag id")
	cmdCourseList.Flags().StringP("cursor", "c", "", "pagination cursor from a previous page")
	cmdCourse.AddCommand(cmdCourseList)

	cmdCourseEnrolled := &cobra.Command{
		Use:   "enrolled",
		Short: "list the courses you have joined",
		Run:   CommandCourseEnrolled,
	}
	cmdCourse.AddCommand(cmdCourseEnrolled)

	cmdCourseShow := &cobra.Command{
		Use:   "show <id>",
		Short: "show one course",
		Run:   CommandCourseShow,
	}
	cmdCourse.AddCommand(cmdCourseShow)

	cmdCourseJoin := &cobra.Command{
		Use:   "join <id>",
		Short: "join a course",
		Run:   CommandCourseJoin,
	}
	cmdCourse.AddCommand(cmdCourseJoin)

	cmdCourseQuit := &cobra.Command{
		Use:   "quit <id>",
		Short: "leave a course",
		Run:   CommandCourseQuit,
	}
	cmdCourse.AddCommand(cmdCourseQuit)

	cmdCourseProblemsets := &cobra.Command{
		Use:   "problemsets <id>",
		Short: "list the problemsets of a course",
		Run:   CommandCourseProblemsets,
	}
	cmdCourse.AddCommand(cmdCourseProblemsets)

	cmdProblemset := &cobra.Command{
		Use:   "problemset",
		Short: "browse and join problemsets",
	}
	cmdTermoj.AddCommand(cmdProblemset)

	cmdProblemsetShow := &cobra.Command{
		Use:   "show <id>",
		Short: "show a problemset and its problems",
		Run:   CommandProblemsetShow,
	}
	cmdProblemset.AddCommand(cmdProblemsetShow)

	cmdProblemsetJoin := &cobra.Command{
		Use:   "join <id>",
		Short: "join a problemset",
		Run:   CommandProblemsetJoin,
	}
	cmdProblemset.AddCommand(cmdProblemsetJoin)

	cmdProblemsetQuit := &cobra.Command{
		Use:   "quit <id>",
		Short: "leave a problemset",
		Run:   CommandProblemsetQuit,
	}
	cmdProblemset.AddCommand(cmdProblemsetQuit)

	cmdProblem := &cobra.Command{
		Use:   "problem",
		Short: "browse and submit problems",
	}
	cmdTermoj.AddCommand(cmdProblem)

	cmdProblemList := &cobra.Command{
		Use:   "list",
		Short: "list problems",
		Run:   CommandProblemList,
	}
	cmdProblemList.Flags().StringP("keyword", "k", "", "filter by title keyword")
	cmdProblemList.Flags().IntP("problemset", "p", 0, "only problems in this problemset")
	cmdProblemList.Flags().StringP("cursor", "c", "", "pagination cursor from a previous page")
	cmdProblem.AddCommand(cmdProblemList)

	cmdProblemShow := &cobra.Command{
		Use:   "show <id>",
		Short: "print a problem statement",
		Run:   CommandProblemShow,
	}
	cmdProblem.AddCommand(cmdProblemShow)

	cmdProblemSubmit := &cobra.Command{
		Use:   "submit <id> <file>",
		Short: "submit a solution file to a problem",
		Long: "   Reads the solution from the given file and submits it.\n" +
			"   Pass --language to name the language; git submissions send\n" +
			"   a repository URL in place of a file.\n\n" +
			"   Example: termoj problem submit 1001 main.cpp --language cpp",
		Run: CommandProblemSubmit,
	}
	cmdProblemSubmit.Flags().StringP("language", "l", "", "language of the solution (cpp, python, java, git, verilog)")
	cmdProblemSubmit.Flags().BoolP("public", "", false, "make the code visible to other users")
	cmdProblem.AddCommand(cmdProblemSubmit)

	cmdSubmission := &cobra.Command{
		Use:   "submission",
		Short: "inspect and manage submissions",
	}
	cmdTermoj.AddCommand(cmdSubmission)

	cmdStatus := &cobra.Command{
		Use:   "status <id>",
		Short: "show a submission's verdict, optionally watching until it is final",
		Long: "   Prints the judge's current view of a submission. With --watch,\n" +
			"   polls until the verdict is final and redraws on every change;\n" +
			"   ctrl+c stops watching without aborting the submission.\n\n" +
			"   Exit status: 0 accepted, 2 any other final verdict, 1 when\n" +
			"   watching stopped before a final verdict.",
		Run: CommandStatus,
	}
	cmdStatus.Flags().BoolP("watch", "w", false, "poll until the verdict is final")
	cmdStatus.Flags().DurationP("interval", "i", time.Second, "delay between polls while watching")
	cmdSubmission.AddCommand(cmdStatus)

	cmdSubmissionList := &cobra.Command{
		Use:   "list",
		Short: "list your submissions",
		Run:   CommandSubmissionList,
	}
	cmdSubmissionList.Flags().IntP("problem", "p", 0, "only submissions to this problem")
	cmdSubmissionList.Flags().StringP("status", "s", "", "only submissions with this status")
	cmdSubmissionList.Flags().StringP("language", "l", "", "only submissions in this language")
	cmdSubmissionList.Flags().StringP("cursor", "c", "", "pagination cursor from a previous page")
	cmdSubmission.AddCommand(cmdSubmissionList)

	cmdAbort := &cobra.Command{
		Use:   "abort <id>",
		Short: "abort a submission that is still being judged",
		Run:   CommandAbort,
	}
	cmdSubmission.AddCommand(cmdAbort)

	cmdUser := &cobra.Command{
		Use:   "user",
		Short: "show your enrollment",
	}
	cmdTermoj.AddCommand(cmdUser)

	cmdUserCourses := &cobra.Command{
		Use:   "courses",
		Short: "list the courses you have joined",
		Run:   CommandUserCourses,
	}
	cmdUser.AddCommand(cmdUserCourses)

	cmdUserProblemsets := &cobra.Command{
		Use:   "problemsets",
		Short: "list the problemsets you have joined",
		Run:   CommandUserProblemsets,
	}
	cmdUser.AddCommand(cmdUserProblemsets)

	cmdTermoj.Execute()
}

func CommandVersion(cmd *cobra.Command, args []string) {
	fmt.Println("termoj " + types.CurrentVersion.Version)

	cfg := mustLoadConfig()
	client := mustClient(cfg)
	server, err := client.ServerVersion(context.Background())
	if err != nil {
		// older judges do not serve /version; unreachable ones should
		// not turn a local version query into a failure
		if api.KindOf(err) != api.KindNotFound {
			log.Printf("unable to check the server version: %v", err)
		}
		return
	}
	fmt.Println("server " + server.Version)
	checkVersion(server)
}

// checkVersion warns when the server wants a newer client. Versions
// that will not parse are skipped so a misconfigured server cannot
// break the tool.
func checkVersion(server *types.Version) {
	current, err := semver.Parse(types.CurrentVersion.Version)
	if err != nil {
		return
	}
	if required, err := semver.Parse(server.CLIVersionRequired); err == nil && required.GT(current) {
		log.Printf("this is termoj version %s, but the server requires %s or higher", types.CurrentVersion.Version, server.CLIVersionRequired)
		log.Fatalf("  you must upgrade to continue")
	}
	if recommended, err := semver.Parse(server.CLIVersionRecommended); err == nil && recommended.GT(current) {
		log.Printf("this is termoj version %s, but the server recommends %s or higher", types.CurrentVersion.Version, server.CLIVersionRecommended)
		log.Printf("  please upgrade as soon as possible")
	}
}
