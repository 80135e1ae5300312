package database

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/ssh"
)

// TunnelNetwork is the DSN network name that routes MySQL connections
// through the SSH client instead of a direct TCP dial.
const TunnelNetwork = "mysql+ssh"

// Tunnel wraps an SSH client used as a jump host in front of MySQL. It
// replaces the original deployment's external tunnel process: the driver
// dials the database address from the remote side of the SSH session.
type Tunnel struct {
	client *ssh.Client
}

// OpenTunnel connects to the SSH host with password auth and registers the
// TunnelNetwork dialer with the MySQL driver. Port 22 is assumed when the
// host carries no port.
func OpenTunnel(host, user, password string) (*Tunnel, error) {
	addr := host
	if !strings.Contains(addr, ":") {
		addr = net.JoinHostPort(addr, "22")
	}

	sshCfg := &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.Password(password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         10 * time.Second,
	}

	client, err := ssh.Dial("tcp", addr, sshCfg)
	if err != nil {
		return nil, fmt.Errorf("ssh dial %s failed: %w", addr, err)
	}

	t := &Tunnel{client: client}

	mysqldriver.RegisterDialContext(TunnelNetwork, func(ctx context.Context, dbAddr string) (net.Conn, error) {
		return t.client.DialContext(ctx, "tcp", dbAddr)
	})

	log.Info().Str("host", addr).Msg("SSH tunnel established")
	return t, nil
}

// Close tears down the SSH session. Registered dialers stay in place but
// will fail once the client is gone, which only happens at shutdown.
func (t *Tunnel) Close() error {
	if t == nil || t.client == nil {
		return nil
	}
	return t.client.Close()
}
