package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
	NoColor   bool `help:"Disable colored output."`
}

type Commands struct {
	Globals

	Format FormatCmd `cmd:"" help:"Format hledger journal files, printing a diff or rewriting in place."`
	Check  CheckCmd  `cmd:"" help:"Verify that journal files are formatted, without writing."`
	Watch  WatchCmd  `cmd:"" help:"Watch journal files and print formatting diffs on change."`
	Doctor DoctorCmd `cmd:"" help:"Report environment information for debugging."`
}
