// voltrec-console is an interactive terminal for a voltage recorder
// connected over a serial link. It pumps device output to stdout and
// sends typed lines to the device as commands.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"voltrec/host/config"
	"voltrec/host/serial"
)

var (
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	configPath = flag.String("config", "voltrec.yaml", "Path to console configuration")
	list       = flag.Bool("list", false, "List available serial ports and exit")
)

func main() {
	flag.Parse()

	if *list {
		ports, err := serial.Ports()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(ports) == 0 {
			fmt.Println("No serial ports found.")
			return
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *device != "" {
		cfg.Serial.Port = *device
	}
	if *baud != 0 {
		cfg.Serial.BaudRate = *baud
	}

	fmt.Printf("Connecting to recorder on %s at %d baud...\n", cfg.Serial.Port, cfg.Serial.BaudRate)
	port, err := serial.Open(&serial.Config{
		Device:      cfg.Serial.Port,
		Baud:        cfg.Serial.BaudRate,
		ReadTimeout: cfg.Serial.ReadTimeoutMs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Println("Connected. Type device commands ('help' for the list), 'quit' to exit.")

	// Pump device output straight to the terminal.
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := port.Read(buf)
			if n > 0 {
				os.Stdout.Write(buf[:n])
			}
			if err != nil && err != io.EOF {
				fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
				return
			}
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return
		}

		if cfg.Console.Echo {
			fmt.Printf("> %s\n", line)
		}

		if _, err := port.Write([]byte(line + "\n")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: write failed: %v\n", err)
			os.Exit(1)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
