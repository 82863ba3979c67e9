package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-user account name for password login
//	-pass account password for password login
//	-file path of the local log file
//	-label remote label marking synchronized notes
//	-policy conflict policy: prefer-local, prefer-remote or do-nothing
//	-a remote note service address in format [host]:[port]
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-ledger checksum ledger path
//	-session session file path
//	-history-db pass history SQLite DSN
//	-backup-dir directory for pre-rewrite log backups
//	-watch run continuously, re-syncing on file changes
//	-debounce quiet period after a change before a pass starts
//	-interval fallback period between passes in watch mode
//	-backoff retry delay after a transient remote failure
//	-dry-run print the plan without committing anything
//	-history print the last N pass records and exit
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var remoteAddress NetAddress
	var user, pass string
	var logPath, label, policy string
	var requestTimeout time.Duration
	var ledgerPath, sessionPath, historyDSN, backupDir string
	var watch, dryRun bool
	var debounce, interval, backoff time.Duration
	var showHistory int
	var jsonConfigPath string

	flag.StringVar(&user, "user", "", "Account name for password login")
	flag.StringVar(&pass, "pass", "", "Account password for password login")
	flag.StringVar(&logPath, "file", "", "Local log file path")
	flag.StringVar(&label, "label", "", "Remote label marking synchronized notes")
	flag.StringVar(&policy, "policy", "", "Conflict policy: prefer-local, prefer-remote or do-nothing")
	flag.Var(&remoteAddress, "a", "Remote note service address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&ledgerPath, "ledger", "", "Checksum ledger path")
	flag.StringVar(&sessionPath, "session", "", "Session file path")
	flag.StringVar(&historyDSN, "history-db", "", "Pass history SQLite DSN")
	flag.StringVar(&backupDir, "backup-dir", "", "Directory for pre-rewrite log backups")
	flag.BoolVar(&watch, "watch", false, "Run continuously, re-syncing on file changes")
	flag.DurationVar(&debounce, "debounce", 0, "Quiet period after a change before a pass starts")
	flag.DurationVar(&interval, "interval", 0, "Fallback period between passes in watch mode")
	flag.DurationVar(&backoff, "backoff", 0, "Retry delay after a transient remote failure")
	flag.BoolVar(&dryRun, "dry-run", false, "Print the plan without committing anything")
	flag.IntVar(&showHistory, "history", 0, "Print the last N pass records and exit")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			User: user,
			Pass: pass,
		},
		Remote: Remote{
			HTTPAddress:    remoteAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			LogPath: logPath,
			Label:   label,
			Policy:  policy,
		},
		Storage: Storage{
			LedgerPath:  ledgerPath,
			SessionPath: sessionPath,
			HistoryDSN:  historyDSN,
			BackupDir:   backupDir,
		},
		Watch: Watch{
			Enabled:  watch,
			Debounce: debounce,
			Interval: interval,
			Backoff:  backoff,
		},
		Run: Run{
			DryRun:      dryRun,
			ShowHistory: showHistory,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
