// Command ormgen generates MikroORM-style TypeScript source from a diagram
// snapshot file, optionally watching the file for changes or serving the
// generator over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v3"

	"github.com/diagramkit/ormgen/compiler/gen"
	"github.com/diagramkit/ormgen/compiler/load"
	"github.com/diagramkit/ormgen/internal/server"
)

// fileConfig is the optional YAML configuration file.
type fileConfig struct {
	IndentSize           int    `yaml:"indent_size"`
	CollectionImportPath string `yaml:"collection_import_path"`
	OutDir               string `yaml:"out_dir"`
	Split                bool   `yaml:"split"`
}

func main() {
	var (
		input      = flag.String("input", "", "diagram snapshot file (.json, .yaml)")
		outDir     = flag.String("out", "generated", "output directory")
		configPath = flag.String("config", "", "YAML config file")
		split      = flag.Bool("split", false, "write per-kind subdirectories")
		indent     = flag.Int("indent", 0, "indent size (overrides config)")
		watch      = flag.Bool("watch", false, "regenerate when the input file changes")
		serve      = flag.Bool("serve", false, "serve the generation API over HTTP")
		addr       = flag.String("addr", defaultAddr(), "listen address for -serve")
	)
	flag.Parse()

	if *serve {
		runServer(*addr)
		return
	}
	if *input == "" {
		log.Fatal("missing -input: a diagram snapshot file is required")
	}

	cfg := fileConfig{OutDir: *outDir, Split: *split}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("parse config: %v", err)
		}
		if cfg.OutDir == "" {
			cfg.OutDir = *outDir
		}
	}
	if *indent > 0 {
		cfg.IndentSize = *indent
	}

	if err := generate(*input, cfg); err != nil {
		log.Fatal(err)
	}
	if *watch {
		watchAndRegenerate(*input, cfg)
	}
}

func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

// generate runs one generation pass from the input file into cfg.OutDir.
func generate(input string, cfg fileConfig) error {
	snap, err := load.FromFile(input)
	if err != nil {
		return err
	}
	var opts []gen.Option
	if cfg.IndentSize > 0 {
		opts = append(opts, gen.WithIndentSize(cfg.IndentSize))
	}
	if cfg.CollectionImportPath != "" {
		opts = append(opts, gen.WithCollectionImportPath(cfg.CollectionImportPath))
	}
	g, err := gen.NewGraph(snap, opts...)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if cfg.Split {
		err = g.WriteSplit(ctx, cfg.OutDir)
	} else {
		err = g.Write(ctx, cfg.OutDir)
	}
	if err != nil {
		return err
	}
	log.Printf("generated %d file(s) into %s", len(snap.Nodes), cfg.OutDir)
	return nil
}

// watchAndRegenerate blocks, regenerating on every change to the input file
// until interrupted. Editors often replace files on save, so the watch is on
// the parent directory and events are filtered by name.
func watchAndRegenerate(input string, cfg fileConfig) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("watch: %v", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		log.Fatalf("watch %s: %v", dir, err)
	}
	log.Printf("watching %s", input)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	target := filepath.Clean(input)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := generate(input, cfg); err != nil {
				log.Printf("regenerate: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		case <-quit:
			log.Println("stopping watcher")
			return
		}
	}
}

// runServer serves the generation API until interrupted, then shuts down
// gracefully.
func runServer(addr string) {
	srv := server.New(addr)

	go func() {
		log.Printf("Server listening on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(fmt.Sprintf("http server error: %s", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}
