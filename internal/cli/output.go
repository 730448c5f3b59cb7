package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	supadata "github.com/supadata-ai/supadata-go"
)

// resolveFormat picks the output format from the --output flag, then
// the config file, defaulting to json.
func resolveFormat() string {
	if output != "" {
		return output
	}
	if outputCfg.Format != "" {
		return outputCfg.Format
	}
	return "json"
}

func printResult(v any) error {
	enc := json.NewEncoder(os.Stdout)
	if outputCfg.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}

// videoRefFromArg treats anything with an HTTP scheme as a URL and
// everything else as a bare video ID.
func videoRefFromArg(arg string) supadata.VideoRef {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return supadata.VideoURL(arg)
	}
	return supadata.VideoID(arg)
}
