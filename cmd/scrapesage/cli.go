package main

// CLI defines the command-line interface structure for Kong. The commands
// themselves live inside the interpreter loop; kong only parses the
// process-level flags.
type CLI struct {
	State string `help:"Path to the session state file." placeholder:"PATH"`
	Model string `help:"Backend model identifier." default:"gemini-2.5-flash"`
	Debug bool   `help:"Enable debug logging."`
}
