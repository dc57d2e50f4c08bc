package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/navikit/coordpad/internal/config"
	"github.com/navikit/coordpad/internal/coord"
	"github.com/navikit/coordpad/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file"`
	Format     string `short:"f" long:"format" description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	To         string `short:"t" long:"to" description:"Render only the named notation"`
	List       bool   `short:"l" long:"list" description:"List notation names and exit"`

	Args struct {
		Input []string `positional-arg-name:"coordinate"`
	} `positional-args:"yes"`
}

// Result is the marshaled conversion outcome for json/yaml output.
type Result struct {
	Input      string           `json:"input" yaml:"input"`
	Format     string           `json:"format" yaml:"format"`
	Coordinate coord.Coordinate `json:"coordinate" yaml:"coordinate"`
	Renderings []Rendering      `json:"renderings" yaml:"renderings"`
	MapLinks   []MapLink        `json:"map_links,omitempty" yaml:"map_links,omitempty"`
}

type Rendering struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

type MapLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	registry := coord.NewRegistry()

	if opts.List {
		for _, name := range registry.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	input := strings.Join(opts.Args.Input, " ")
	if strings.TrimSpace(input) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read stdin")
		}
		input = strings.TrimSpace(string(data))
	}
	if input == "" {
		log.Fatal().Msg("No coordinate given (argument or stdin)")
	}

	name, c, err := registry.Detect(input)
	if err != nil {
		log.Fatal().Str("input", input).Msg("Coordinate format not recognized")
	}

	log.Debug().
		Str("format", name).
		Float64("lon", c.Longitude).
		Float64("lat", c.Latitude).
		Msg("Input resolved")

	if opts.To != "" {
		out, err := registry.FormatOne(opts.To, c)
		if err != nil {
			log.Fatal().Err(err).Msg("Unknown target notation")
		}
		fmt.Println(out)
		return
	}

	result := Result{
		Input:      input,
		Format:     name,
		Coordinate: c,
		Renderings: make([]Rendering, 0, registry.Len()),
	}
	names := registry.Names()
	for i, text := range registry.FormatAll(c) {
		result.Renderings = append(result.Renderings, Rendering{Name: names[i], Text: text})
	}
	for _, link := range cfg.MapLinks {
		result.MapLinks = append(result.MapLinks, MapLink{
			Name: link.Name,
			URL:  link.Render(c.Longitude, c.Latitude),
		})
	}

	switch opts.Format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to marshal result")
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to marshal result")
		}
		fmt.Print(string(data))
	default:
		printText(result)
	}
}

func printText(r Result) {
	width := 0
	for _, rr := range r.Renderings {
		if len(rr.Name) > width {
			width = len(rr.Name)
		}
	}

	fmt.Printf("detected: %s\n\n", r.Format)
	for _, rr := range r.Renderings {
		fmt.Printf("%-*s  %s\n", width, rr.Name, rr.Text)
	}
	if len(r.MapLinks) > 0 {
		fmt.Println()
		for _, link := range r.MapLinks {
			fmt.Printf("%-*s  %s\n", width, link.Name, link.URL)
		}
	}
}
