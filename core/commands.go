// Serial command handling for the voltage recorder.
// Commands are single newline-terminated lines, matched case-insensitively
// by leading keyword prefix, the way the serial console has always worked.
package core

import "strings"

// CommandHandler processes one parsed command. arg is the remainder of
// the line after the matched keyword, trimmed.
type CommandHandler func(c *Controller, arg string)

// Command binds a serial keyword (plus aliases) to its handler and the
// help text shown by 'help'.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Help    string
	Handler CommandHandler
}

// commandTable is the fixed command set, consulted in order. It is
// assigned in init rather than at declaration because the help handler
// refers back to the table.
var commandTable []Command

func init() {
	commandTable = []Command{
		{
			Name: "start", Aliases: []string{"begin"},
			Usage: "start/begin", Help: "Start voltage recording",
			Handler: func(c *Controller, _ string) { c.StartRecording() },
		},
		{
			Name:  "stop",
			Usage: "stop", Help: "Stop recording",
			Handler: func(c *Controller, _ string) { c.StopRecording() },
		},
		{
			Name: "show", Aliases: []string{"print"},
			Usage: "show/print", Help: "Display recorded data",
			Handler: func(c *Controller, _ string) { c.ShowData() },
		},
		{
			Name: "replay", Aliases: []string{"replicate"},
			Usage: "replay", Help: "Replicate recorded voltages on the output pin",
			Handler: func(c *Controller, _ string) { c.Replay() },
		},
		{
			Name:  "status",
			Usage: "status", Help: "Show system status",
			Handler: func(c *Controller, _ string) { c.PrintStatus() },
		},
		{
			Name:  "read",
			Usage: "read", Help: "Read current voltage",
			Handler: func(c *Controller, _ string) { c.ReadNow() },
		},
		{
			Name:  "clear",
			Usage: "clear", Help: "Clear sample buffer",
			Handler: func(c *Controller, _ string) { c.Clear() },
		},
		{
			Name:  "calibrate",
			Usage: "calibrate", Help: "Calibrate ADC offset (run with pin grounded)",
			Handler: func(c *Controller, _ string) { c.CalibrateOffset() },
		},
		{
			Name:  "rate",
			Usage: "rate <Hz>", Help: "Set sample rate (1-10000 Hz)",
			Handler: func(c *Controller, arg string) { c.SetSampleRate(arg) },
		},
		{
			Name:  "samples",
			Usage: "samples <N>", Help: "Set ADC samples per reading (1-1024)",
			Handler: func(c *Controller, arg string) { c.SetOversample(arg) },
		},
		{
			Name:  "help",
			Usage: "help", Help: "Show this help",
			Handler: func(c *Controller, _ string) { c.PrintHelp() },
		},
	}
}

// Dispatch parses one command line and runs the matching handler.
func (c *Controller) Dispatch(line string) {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return
	}

	for i := range commandTable {
		cmd := &commandTable[i]
		if ok, arg := cmd.match(line); ok {
			cmd.Handler(c, arg)
			return
		}
	}

	c.println("Unknown command. Type 'help' for available commands.")
}

func (cmd *Command) match(line string) (bool, string) {
	if ok, arg := matchKeyword(line, cmd.Name); ok {
		return true, arg
	}
	for _, alias := range cmd.Aliases {
		if ok, arg := matchKeyword(line, alias); ok {
			return true, arg
		}
	}
	return false, ""
}

// matchKeyword reports whether line begins with the keyword and returns
// the trimmed remainder after it.
func matchKeyword(line, keyword string) (bool, string) {
	if !strings.HasPrefix(line, keyword) {
		return false, ""
	}
	return true, strings.TrimSpace(line[len(keyword):])
}

// ShowData emits the buffered samples as index,voltage,time rows, pausing
// every pageRows lines so a terminal can keep up.
func (c *Controller) ShowData() {
	if c.buf.Count() == 0 {
		c.println("No data recorded!")
		return
	}

	c.println("Printing " + itoa(c.buf.Count()) + " recorded samples:")
	c.println("Sample#,Voltage(V),Time(ms)")
	c.println("------------------------")

	for i := 0; i < c.buf.Count(); i++ {
		timeMs := float32(i) * 1000.0 / float32(c.sampleRateHz)
		c.println(itoa(i) + "," + ftoa(c.buf.At(i), 4) + "," + ftoa(timeMs, 1))

		if (i+1)%pageRows == 0 && i < c.buf.Count()-1 {
			c.println("--- Press any key to continue ---")
			c.waitForInput()
		}
	}

	c.println("------------------------")
	c.println("Total: " + itoa(c.buf.Count()) + " samples")
}

// waitForInput blocks until any serial byte arrives, then drains the
// input queue.
func (c *Controller) waitForInput() {
	ser := MustSerial()
	clock := MustClock()
	for ser.Buffered() == 0 {
		clock.DelayMicros(10000)
	}
	for ser.Buffered() > 0 {
		ser.ReadByte()
	}
}

// PrintStatus reports the session state, buffer occupancy and a live
// voltage reading, plus range statistics when samples exist.
func (c *Controller) PrintStatus() {
	c.println("=== System Status ===")
	if c.recording {
		c.println("Recording: YES")
	} else {
		c.println("Recording: NO")
	}
	c.println("Samples in buffer: " + itoa(c.buf.Count()) + "/" + itoa(c.buf.Cap()))
	c.println("Sample rate: " + itoa(c.sampleRateHz) + " Hz")
	if c.sampleRateHz > c.cfg.SafeRateHz {
		c.println(c.rateWarning())
	}
	c.println("Memory usage: " + ftoa(float32(c.buf.Count()*4)/1024.0, 1) + " KB")

	if v, err := c.readVoltage(); err == nil {
		c.println("Current voltage: " + ftoa(v, 4) + " V")
	} else {
		c.println("Current voltage: read failed")
	}

	if c.buf.Count() > 0 {
		min, max, avg := c.buf.Stats()
		c.println("Recorded range: " + ftoa(min, 4) + " - " + ftoa(max, 4) +
			" V (avg: " + ftoa(avg, 4) + " V)")
		c.println("Actual recording duration: " + ftoa(c.recordedSeconds(), 2) + " seconds")
	}
}

// PrintHelp emits the command summary and wiring notes.
func (c *Controller) PrintHelp() {
	c.println("")
	c.println("=== Available Commands ===")
	for i := range commandTable {
		cmd := &commandTable[i]
		c.println(pad(cmd.Usage, 14) + "- " + cmd.Help)
	}
	c.println("")
	c.println("Connections:")
	c.println("Voltage input: " + c.cfg.InputPinName + " (0-" + ftoa(c.cfg.OutputMaxVolts, 1) + "V max!)")
	c.println("Voltage output: " + c.cfg.OutputPinName + " (DAC)")
	c.println("")
	c.println("Max samples: " + itoa(c.buf.Cap()) +
		" (" + ftoa(float32(c.buf.Cap()*4)/1024.0, 1) + " KB memory)")
}
