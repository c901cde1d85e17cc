package domain

// CommandRequest asks the dispatcher to run `<script> <action>` as its owner.
// User is optional; when empty the owner is resolved by scanning managed homes.
type CommandRequest struct {
	Script string
	Action string
	User   string
}

// CommandResult acknowledges a launched command. It never reports completion.
type CommandResult struct {
	Script  string
	Action  string
	User    string
	Message string
}

// LogRequest selects a script's console log.
type LogRequest struct {
	Script string
	User   string
	Lines  int
}

// LogTail is the bounded tail of a log file.
type LogTail struct {
	Script string
	User   string
	Path   string
	Lines  []string
}

// DefaultLogPatterns are tried in order; `{script}` is replaced by the script name.
var DefaultLogPatterns = []string{
	"log/console/{script}-console.log",
	"log/script/{script}-script.log",
	"log/{script}-console.log",
}
