package fstream

import (
	"fmt"
	"net/http"
	"os"

	"inputfile/pkg/config"
	"inputfile/pkg/inputfile"
	"inputfile/pkg/logger"
	"inputfile/pkg/platform"
)

// sourceFlags are the mutually exclusive ways a command can name its input.
type sourceFlags struct {
	url    string
	base64 string
	name   string
}

// buildInput turns the command's flags and positional argument into an
// InputFile. Exactly one source must be given; a positional "-" means
// standard input.
func buildInput(args []string, sf sourceFlags, opts ...inputfile.Option) (*inputfile.InputFile, error) {
	if sf.name != "" {
		opts = append(opts, inputfile.WithName(sf.name))
	}

	given := 0
	if len(args) == 1 {
		given++
	}
	if sf.url != "" {
		given++
	}
	if sf.base64 != "" {
		given++
	}
	if given != 1 {
		return nil, fmt.Errorf("specify exactly one source: a path argument, --url, or --base64")
	}

	switch {
	case sf.url != "":
		return inputfile.FromURL(sf.url, opts...)
	case sf.base64 != "":
		return inputfile.FromBase64(sf.base64, opts...), nil
	case args[0] == "-":
		return inputfile.FromReader(os.Stdin, opts...), nil
	default:
		return inputfile.FromPath(args[0], opts...), nil
	}
}

// setup loads configuration and builds the platform used for this
// invocation.
func setup() (*config.Config, platform.Platform, error) {
	cfg, loadedFrom, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	logger.Debug("configuration loaded", "from", loadedFrom)

	client := &http.Client{Timeout: cfg.Client.Timeout}
	if !cfg.Client.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	plat := platform.New(client, platform.WithUserAgent(cfg.Client.UserAgent))
	return cfg, plat, nil
}
