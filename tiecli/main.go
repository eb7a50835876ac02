package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MBonnice/notation/internal/scoretest"
	"github.com/MBonnice/notation/score"
	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'notation.tie'
func tracer() tracing.Trace {
	return tracing.Select("notation.tie")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.notation.tie": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	scorename := flag.String("score", "", "Score fixture to load (TOML)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)     // will set the correct level later
	pterm.Info.Println("Welcome to the tie shell") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("tie > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, note: -1}
	//
	// load score to use
	if err := intp.loadScore(*scorename); err != nil { // score name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	doc      *score.Doc
	opts     *score.Opts
	repl     *readline.Instance
	entry    int
	note     int
	pageView bool
}

func (intp *Intp) String() string {
	if intp == nil || intp.doc == nil {
		return "()"
	}
	sb := strings.Builder{}
	view := "scroll"
	if intp.pageView {
		view = "page"
	}
	sb.WriteString(fmt.Sprintf("( %s view, entry=%d", view, intp.entry))
	if intp.note >= 0 {
		sb.WriteString(fmt.Sprintf(", note=%d", intp.note))
	}
	sb.WriteString(" )")
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-codes QUIT and PAGE will not have arguments
	QUIT int = iota
	PAGE
	// op-codes below may have arguments
	HELP
	LOAD
	ENTRIES
	ENTRY
	NOTE
	DIR
	PLACE
	CODE
	REPORT
	OPTIONS
)

var opMap = map[string]int{
	"quit":    QUIT,
	"page":    PAGE,
	"help":    HELP,
	"load":    LOAD,
	"entries": ENTRIES,
	"entry":   ENTRY,
	"note":    NOTE,
	"dir":     DIR,
	"place":   PLACE,
	"code":    CODE,
	"report":  REPORT,
	"options": OPTIONS,
}

var opNames = []string{
	"quit",
	"page",
	"help",
	"load",
	"entries",
	"entry",
	"note",
	"dir",
	"place",
	"code",
	"report",
	"options",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
	}
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Split(line, " ")
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":") // e.g.  "entry:3" or "load:demo.toml" or "dir"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		command.op[i].arg = ""
		if command.op[i].code <= PAGE {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[command.op[i].code])
		} else {
			tracer().Debugf("%s: arg '%s'", opNames[command.op[i].code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	PAGE:    pageOp,
	HELP:    helpOp,
	LOAD:    loadOp,
	ENTRIES: entriesOp,
	ENTRY:   entryOp,
	NOTE:    noteOp,
	DIR:     dirOp,
	PLACE:   placeOp,
	CODE:    codeOp,
	REPORT:  reportOp,
	OPTIONS: optionsOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op)
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func pageOp(intp *Intp, op *Op) (error, bool) {
	intp.pageView = !intp.pageView
	if intp.pageView {
		pterm.Println("classifying for page view")
	} else {
		pterm.Println("classifying for scroll view")
	}
	return nil, false
}

func loadOp(intp *Intp, op *Op) (error, bool) {
	return intp.loadScore(op.arg), false
}

func entryOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		pterm.Printf("current entry is %d\n", intp.entry)
		return nil, false
	}
	inx, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("entry index '%s' is not a number", arg), false
	}
	if inx < 0 || inx >= len(intp.doc.Entries()) {
		return fmt.Errorf("entry index %d out of range (entries: %d)", inx, len(intp.doc.Entries())), false
	}
	intp.entry = inx
	intp.note = -1
	return nil, false
}

func noteOp(intp *Intp, op *Op) (error, bool) {
	e, err := intp.currentEntry()
	if err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok {
		pterm.Printf("current note is %d\n", intp.note)
		return nil, false
	}
	inx, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("note index '%s' is not a number", arg), false
	}
	if inx < 0 || inx >= e.NoteCount() {
		return fmt.Errorf("note index %d out of range (notes: %d)", inx, e.NoteCount()), false
	}
	intp.note = inx
	return nil, false
}

// --- Score Loading ----------------------------------------------------

// loadScore replaces the current document, either from a TOML fixture
// file or, without an argument, with the built-in demo score.
func (intp *Intp) loadScore(scorename string) (err error) {
	if scorename == "" {
		intp.doc, intp.opts = scoretest.DemoScore()
		pterm.Printf("loaded demo score with %d entries\n", len(intp.doc.Entries()))
	} else {
		doc, opts, err := score.LoadTOML(scorename)
		if err != nil {
			tracer().Errorf("cannot load score %s: %s", scorename, err)
			return err
		}
		intp.doc, intp.opts = doc, opts
		pterm.Printf("loaded %s with %d entries\n", scorename, len(doc.Entries()))
	}
	intp.entry = 0
	intp.note = -1
	return nil
}

// ----------------------------------------------------------------------

func (intp *Intp) currentEntry() (score.Entry, error) {
	if intp.doc == nil || len(intp.doc.Entries()) == 0 {
		return nil, ERR_NO_SCORE
	}
	if intp.entry < 0 || intp.entry >= len(intp.doc.Entries()) {
		return nil, ERR_NO_ENTRY
	}
	return intp.doc.Entries()[intp.entry], nil
}

func (intp *Intp) currentNote() (score.Note, error) {
	e, err := intp.currentEntry()
	if err != nil {
		return nil, err
	}
	if e.IsRest() {
		return nil, ERR_REST
	}
	inx := intp.note
	if inx < 0 {
		inx = 0
	}
	if inx >= e.NoteCount() {
		return nil, ERR_NO_NOTE
	}
	return e.Note(inx), nil
}

var ERR_NO_SCORE = errors.New("no score loaded")
var ERR_NO_ENTRY = errors.New("no entry selected")
var ERR_NO_NOTE = errors.New("no note selected")
var ERR_REST = errors.New("entry is a rest")

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
