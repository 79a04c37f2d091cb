// Command roversim runs the rover simulator.
//
// It supports three modes:
//  1. "run" (default) – builds a scenario, executes a command string and prints the result
//  2. "mcp" – serves the simulator as MCP tools over stdio
//  3. "scenarios" – lists the scenarios found in the config directory
//
// Flags control the config directory, scenario selection, output format and
// debug logging. Settings may also come from the environment or a .env file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/roversim/game/config"
	"github.com/wricardo/mcp-training/roversim/game/engine"
	"github.com/wricardo/mcp-training/roversim/game/service"
	"github.com/wricardo/mcp-training/roversim/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Rover Simulator"
)

// main loads the environment, builds the CLI and runs it.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Errors are always
// written to stderr, whatever the log settings.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", AppName, err)
		return 1
	}
	return 0
}

// newApp builds the command tree. The root command behaves like "run", and
// its flags are inherited by every subcommand.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    "roversim",
		Usage:   "simulate a rover on a grid with obstacles",
		Version: Version,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing scenario files",
				Sources: cli.EnvVars("ROVER_CONFIG_DIR", "CONFIG_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("ROVER_DEBUG"),
			},
		}, runFlags()...),
		Before: setupLogging,
		Action: runSimulation,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "execute a command string against a scenario (default)",
				Action: runSimulation,
			},
			{
				Name:   "mcp",
				Usage:  "serve the simulator as MCP tools over stdio",
				Action: runStdioMCP,
			},
			{
				Name:   "scenarios",
				Usage:  "list scenarios in the config directory",
				Action: listScenarios,
			},
		},
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "scenario",
			Aliases: []string{"s"},
			Usage:   "scenario id from the config directory (default: default.json or built-in)",
			Sources: cli.EnvVars("ROVER_SCENARIO"),
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "path to a scenario file (.json, .yaml, .yml); overrides --scenario",
		},
		&cli.StringFlag{
			Name:    "commands",
			Aliases: []string{"c"},
			Usage:   "command string of M, L, R (default: the scenario's commands)",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "text",
			Usage: "output format: text or json",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "print every executed step",
		},
		&cli.BoolFlag{
			Name:  "map",
			Usage: "print the final grid map",
		},
	}
}

// setupLogging sends the log to the error writer and mirrors the --debug
// flag into the log flags
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log.SetOutput(errWriter(cmd))
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	return ctx, nil
}

// errWriter returns the root command's error writer, or stderr when unset
func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// initializeServices wires the scenario manager and the rover service
func initializeServices(configDir string) (*config.Manager, service.RoverService, error) {
	manager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create scenario manager: %w", err)
	}
	return manager, service.NewRoverService(manager), nil
}

// resolveScenario picks the scenario from --file, --scenario, or the manager default
func resolveScenario(cmd *cli.Command, manager *config.Manager) (*engine.Scenario, error) {
	if path := cmd.String("file"); path != "" {
		scenario, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return scenario, nil
	}
	if name := cmd.String("scenario"); name != "" {
		scenario, err := manager.LoadScenario(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario %s: %w", name, err)
		}
		return scenario, nil
	}
	return manager.GetDefault(), nil
}

// runSimulation executes one command string and prints the final state
func runSimulation(ctx context.Context, cmd *cli.Command) error {
	manager, roverService, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	scenario, err := resolveScenario(cmd, manager)
	if err != nil {
		return err
	}

	info, err := roverService.UseScenario(ctx, scenario)
	if err != nil {
		return err
	}

	commands := scenario.Commands
	if cmd.IsSet("commands") {
		commands = cmd.String("commands")
	}

	log.Printf("Running %q on scenario %q (%dx%d, %d obstacles)",
		commands, scenario.Name, info.Width, info.Height, len(info.Obstacles))

	result, err := roverService.Execute(ctx, commands)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	switch strings.ToLower(cmd.String("format")) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text", "":
	default:
		return fmt.Errorf("unknown format %q (use text or json)", cmd.String("format"))
	}

	if cmd.Bool("trace") {
		for _, step := range result.Result.Steps {
			line := fmt.Sprintf("%d: %s %s -> %s", step.Index, step.Token, step.Before, step.After)
			if step.Blocked() {
				line += " blocked"
			}
			fmt.Fprintln(out, line)
		}
	}

	if cmd.Bool("map") {
		status, err := roverService.Status(ctx)
		if err != nil {
			return err
		}
		for _, row := range status.Map {
			fmt.Fprintln(out, row)
		}
	}

	for _, line := range result.Result.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}

// runStdioMCP serves the MCP tools over stdio
func runStdioMCP(ctx context.Context, cmd *cli.Command) error {
	srv, err := newMCPServer(cmd)
	if err != nil {
		return err
	}
	return srv.ServeStdio()
}

// newMCPServer builds the MCP server for the selected scenario. The log is
// pointed at the error writer before anything is built, so stdout carries
// only protocol messages and service warnings are not lost.
func newMCPServer(cmd *cli.Command) (*mcp.Server, error) {
	log.SetOutput(errWriter(cmd))
	log.Printf("Starting %s v%s (mode: mcp)", AppName, Version)

	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario manager: %w", err)
	}
	if name := cmd.String("scenario"); name != "" {
		if err := manager.SetDefault(name); err != nil {
			return nil, fmt.Errorf("failed to select scenario %s: %w", name, err)
		}
	}

	return mcp.NewServer(service.NewRoverService(manager), Version), nil
}

// listScenarios prints every loadable scenario in the config directory
func listScenarios(ctx context.Context, cmd *cli.Command) error {
	_, roverService, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	scenarios, err := roverService.ListScenarios(ctx)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if len(scenarios) == 0 {
		fmt.Fprintln(out, "No scenarios found; the built-in default will be used.")
		return nil
	}
	for _, sc := range scenarios {
		fmt.Fprintf(out, "%-20s %3dx%-3d obstacles=%-3d %s\n", sc.ScenarioID, sc.Width, sc.Height, sc.Obstacles, sc.Name)
	}
	return nil
}
