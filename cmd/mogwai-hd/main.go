// Command mogwai-hd derives and inspects BIP32 keys of the Mogwai networks and manages
// an encrypted keystore of BIP44 accounts.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mogwai-project/mogwai-node/adb"
	"github.com/mogwai-project/mogwai-node/adb/boltdb"
	"github.com/mogwai-project/mogwai-node/adb/lmdb"
	"github.com/mogwai-project/mogwai-node/chaincfg"
	"github.com/mogwai-project/mogwai-node/config"
	"github.com/mogwai-project/mogwai-node/logger"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

var Log = logger.New()

func kdfFast() (uint32, uint32) {
	return config.KDF_ITERATIONS_FAST, config.KDF_MEMORY_FAST
}

func defaultDataDir(params *chaincfg.Params) string {
	home, err := os.UserHomeDir()
	if err != nil {
		Log.Fatal(err)
	}
	return filepath.Join(home, "."+config.NAME+"-"+params.Name)
}

func openDB(backend, path string) (adb.DB, error) {
	switch backend {
	case "bolt":
		return boltdb.New(path, 0o600)
	case "lmdb":
		return lmdb.New(path, 0o600, Log)
	default:
		return nil, errors.Errorf("unknown database backend %q", backend)
	}
}

// terminalPassword reads a password from the terminal without echo.
func terminalPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal, use -password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	return term.ReadPassword(fd)
}

func main() {
	version := flag.Bool("version", false, "prints version and exits")
	network := flag.String("network", config.NETWORK_NAME, "network: "+strings.Join(chaincfg.Nets(), ", "))
	log_level := flag.Uint("log-level", 1, "sets the log level (range: 0-3)")
	data_dir := flag.String("data-dir", "", "directory that holds the keystore, defaults to ~/."+config.NAME+"-<network>")
	keystore := flag.String("keystore", "", "keystore path, overrides -data-dir")
	db_backend := flag.String("db", "bolt", "keystore database backend: bolt or lmdb")
	non_interactive := flag.Bool("non-interactive", false, "runs the command given as arguments and exits")
	fast_kdf := flag.Bool("fast-kdf", false, "encrypts new accounts with a faster, weaker KDF")
	password := flag.String("password", "", "keystore password in non-interactive mode")
	passphrase := flag.String("bip39-passphrase", "", "optional BIP39 passphrase applied to mnemonics")
	json_output := flag.Bool("json", false, "prints decoded keys as JSON")

	flag.Parse()

	if *version {
		fmt.Printf("%s-hd v%v.%v.%v\n", config.NAME, config.VERSION_MAJOR, config.VERSION_MINOR, config.VERSION_PATCH)
		os.Exit(0)
	}

	Log.SetLogLevel(uint8(*log_level))

	params, err := chaincfg.ParamsForName(*network)
	if err != nil {
		Log.Fatal(err)
	}

	if params.Name != "main" {
		Log.Warn("Using the", strings.ToUpper(params.Name), "network, keys are only meant for testing.")
	}

	path := *keystore
	if path == "" {
		dir := *data_dir
		if dir == "" {
			dir = defaultDataDir(params)
		}
		file := config.KEYSTORE_FILE
		if *db_backend == "lmdb" {
			file = "keystore-lmdb"
		}
		path = filepath.Join(dir, file)
	}
	Log.Debug("keystore path:", path)

	a := &app{
		params:     params,
		log:        Log,
		passphrase: *passphrase,
		json:       *json_output,
		fastKDF:    *fast_kdf || params.Name == chaincfg.RegressionNetParams.Name,
		openDB: func() (adb.DB, error) {
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return nil, err
			}
			return openDB(*db_backend, path)
		},
	}
	defer a.close()

	if *non_interactive {
		a.readPassword = func(prompt string) ([]byte, error) {
			if *password != "" {
				return []byte(*password), nil
			}
			return terminalPassword(prompt)
		}
		if err := a.run(a.commands(), flag.Args()); err != nil {
			a.close()
			Log.Fatal(err)
		}
		return
	}

	Log.Infof("Starting %s HD tool v%d.%d.%d on %s", config.NAME, config.VERSION_MAJOR, config.VERSION_MINOR, config.VERSION_PATCH, params.Name)
	a.prompts()
}
