package sftp

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	_sftp "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const systemWideKnownHosts = "/etc/ssh/ssh_known_hosts"

// Options holds sftp-specific options. Currently only connection options are
// used.
type Options struct {
	Username           string              `json:"username,omitempty"`       // env var SYNFS_SFTP_USERNAME
	Password           string              `json:"password,omitempty"`       // env var SYNFS_SFTP_PASSWORD
	KeyFilePath        string              `json:"keyFilePath,omitempty"`    // env var SYNFS_SFTP_KEYFILE
	KeyPassphrase      string              `json:"keyPassphrase,omitempty"`  // env var SYNFS_SFTP_KEYFILE_PASSPHRASE
	KnownHostsFile     string              `json:"knownHostsFile,omitempty"` // env var SYNFS_SFTP_KNOWN_HOSTS_FILE
	KnownHostsString   string              `json:"knownHostsString,omitempty"`
	KnownHostsCallback ssh.HostKeyCallback // env var SYNFS_SFTP_INSECURE_KNOWN_HOSTS
}

func getClient(host string, opts Options) (Client, error) {
	// setup authentication
	authMethods, err := getAuthMethods(opts)
	if err != nil {
		return nil, err
	}

	// get callback for handling known_hosts man-in-the-middle checks
	hostKeyCallback, err := getHostKeyCallback(opts)
	if err != nil {
		return nil, err
	}

	username := os.Getenv("SYNFS_SFTP_USERNAME")
	if opts.Username != "" {
		username = opts.Username
	}

	config := &ssh.ClientConfig{
		User:            username,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
	}

	// default to port 22
	if !strings.Contains(host, ":") {
		host += ":22"
	}

	sshConn, err := ssh.Dial("tcp", host, config)
	if err != nil {
		return nil, err
	}

	client, err := _sftp.NewClient(sshConn)
	if err != nil {
		sshConn.Close() //nolint:errcheck // the handshake error wins
		return nil, err
	}

	return &realClient{client: client, conn: sshConn}, nil
}

// realClient adapts a live *sftp.Client to the Client interface and ties the
// ssh connection's lifetime to it.
type realClient struct {
	client *_sftp.Client
	conn   *ssh.Client
}

func (c *realClient) Open(p string) (ReadWriteSeekCloser, error) {
	return c.client.Open(p)
}

func (c *realClient) Create(p string) (ReadWriteSeekCloser, error) {
	return c.client.Create(p)
}

func (c *realClient) MkdirAll(p string) error {
	return c.client.MkdirAll(p)
}

func (c *realClient) Close() error {
	sftpErr := c.client.Close()
	connErr := c.conn.Close()
	if sftpErr != nil {
		return sftpErr
	}
	return connErr
}

// getHostKeyCallback gets host key callback for all known_hosts files
func getHostKeyCallback(opts Options) (ssh.HostKeyCallback, error) {
	var knownHostsFiles []string
	switch {
	// use explicit callback in Options
	case opts.KnownHostsCallback != nil:
		return opts.KnownHostsCallback, nil

	// use an in-line authorized-key string as the one allowed host key
	case opts.KnownHostsString != "":
		hostKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(opts.KnownHostsString))
		if err != nil {
			return nil, err
		}
		return ssh.FixedHostKey(hostKey), nil

	// use explicit known_hosts file path, ie, /home/bob/.ssh/known_hosts
	case opts.KnownHostsFile != "":
		// check first to prevent auto-vivification of file
		found, err := foundFile(opts.KnownHostsFile)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, opts.KnownHostsFile)
			break
		}
		// use env var if explicit file wasn't found
		fallthrough

	// use env var known_hosts file path
	case os.Getenv("SYNFS_SFTP_KNOWN_HOSTS_FILE") != "":
		found, err := foundFile(os.Getenv("SYNFS_SFTP_KNOWN_HOSTS_FILE"))
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, os.Getenv("SYNFS_SFTP_KNOWN_HOSTS_FILE"))
			break
		}
		// use default if env var file wasn't found
		fallthrough

	// skip host key checking when explicitly asked to
	case os.Getenv("SYNFS_SFTP_INSECURE_KNOWN_HOSTS") != "":
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // explicit opt-in

	// use user/system-wide known_hosts paths (as defined by OpenSSH https://man.openbsd.org/ssh)
	default:
		var err error
		knownHostsFiles, err = findHomeSystemKnownHosts(knownHostsFiles)
		if err != nil {
			return nil, err
		}
	}

	// get host key callback for all known_hosts files
	return knownhosts.New(knownHostsFiles...)
}

func findHomeSystemKnownHosts(knownHostsFiles []string) ([]string, error) {
	// add ~/.ssh/known_hosts
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}
	homeKnownHosts := filepath.Join(home, ".ssh", "known_hosts")

	// check file existence first to prevent auto-vivification of file
	found, err := foundFile(homeKnownHosts)
	if err != nil {
		return nil, err
	}
	if found {
		knownHostsFiles = append(knownHostsFiles, homeKnownHosts)
	}

	// add /etc/ssh/ssh_known_hosts for unix-like systems. SSH doesn't exist
	// natively on Windows and each implementation has a different location for
	// known_hosts, better to specify in KnownHostsFile there
	if runtime.GOOS != "windows" {
		found, err := foundFile(systemWideKnownHosts)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, systemWideKnownHosts)
		}
	}
	return knownHostsFiles, nil
}

func foundFile(file string) (bool, error) {
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			// file does not exist
			return false, nil
		}
		// other error
		return false, err
	}
	return true, nil
}

func getAuthMethods(opts Options) ([]ssh.AuthMethod, error) {
	auth := make([]ssh.AuthMethod, 0)

	// explicitly set password from opts, then from env if any
	pw := os.Getenv("SYNFS_SFTP_PASSWORD")
	if opts.Password != "" {
		pw = opts.Password
	}
	if pw != "" {
		auth = append(auth, ssh.Password(pw))
	}

	// setup key-based auth from opts or env, if any
	keyfile := os.Getenv("SYNFS_SFTP_KEYFILE")
	if opts.KeyFilePath != "" {
		keyfile = opts.KeyFilePath
	}
	if keyfile != "" {
		// gather passphrase, if any
		passphrase := os.Getenv("SYNFS_SFTP_KEYFILE_PASSPHRASE")
		if opts.KeyPassphrase != "" {
			passphrase = opts.KeyPassphrase
		}

		secretKey, err := getKeyFile(keyfile, passphrase)
		if err != nil {
			return nil, err
		}
		auth = append(auth, ssh.PublicKeys(secretKey))
	}

	return auth, nil
}

func getKeyFile(file, passphrase string) (ssh.Signer, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(buf, []byte(passphrase))
	}
	return ssh.ParsePrivateKey(buf)
}
