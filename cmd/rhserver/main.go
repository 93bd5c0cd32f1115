// Command rhserver serves the SolveAnagram function locally through the functions framework.
package main

import (
	"flag"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog/log"

	"rabbithole.dev/anagrams"
)

func main() {
	verbose := flag.Bool("v", false, "Log search progress")
	flag.Parse()

	anagrams.ConfigureLogging(*verbose)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	log.Info().Str("port", port).Str("function", anagrams.FunctionName).Msg("serving")
	if err := funcframework.Start(port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.Start")
	}
}
