package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"boardapi/app/repositories"
	"boardapi/app/routes"
)

const cliVersion = "1.2.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("boardapi version %s\n", cliVersion)
	case "serve":
		serve(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: boardapi <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [options]                Run the board API server.
    -addr <host:port>            Listen address (default :8080, or SERVER_ADDR).
    -cors-origins <a,b,...>      Comma-separated allowed CORS origins.
    -seed                        Seed the empty store with sample posts.
`
	fmt.Println(helpText)
}

// serve opens the in-memory store and runs the API server until the
// process exits. Posts live only as long as the process does.
func serve(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", defaultAddr(), "listen address")
	corsOrigins := fs.String("cors-origins", "", "comma-separated allowed CORS origins")
	seed := fs.Bool("seed", false, "seed the empty store with sample posts")
	fs.Parse(args)

	db, err := repositories.OpenInMemory()
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer db.Close()

	if *seed {
		repo := repositories.NewBadgerPostRepository(db)
		if err := repo.Seed(); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
		log.Printf("Seeded store with %d sample posts", repositories.SampleSeedCount)
	}

	var origins []string
	if *corsOrigins != "" {
		for _, o := range strings.Split(*corsOrigins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	router := routes.SetupRoutes(db, origins)

	log.Printf("Starting board API on %s", *addr)
	if err := routes.StartServer(*addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func defaultAddr() string {
	if addr, ok := os.LookupEnv("SERVER_ADDR"); ok {
		return addr
	}
	return ":8080"
}
