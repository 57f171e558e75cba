// Package publish pins a completed draw's result fixture to IPFS:
// wrap go-ipfs-api's Shell, probe the node once at construction time,
// and expose a thin PublishFile/GatewayURL surface.
package publish

import (
	"fmt"
	"os"
	"strings"
	"time"

	shell "github.com/ipfs/go-ipfs-api"
)

// Publisher pins files to an IPFS node and resolves a gateway URL for
// the resulting CID.
type Publisher struct {
	client  *shell.Shell
	gateway string
}

// New connects to the IPFS HTTP API at api and verifies it's reachable
// via Shell.ID(). If api is empty, New returns a nil *Publisher and a
// nil error: publishing is an optional side effect, not a hard
// dependency of running a draw.
func New(api, gateway string) (*Publisher, error) {
	api = strings.TrimSpace(api)
	if api == "" {
		return nil, nil
	}

	s := shell.NewShell(normalizeAPI(api))
	s.SetTimeout(15 * time.Second)

	if _, err := s.ID(); err != nil {
		return nil, fmt.Errorf("ipfs api unhealthy: %w", err)
	}

	return &Publisher{
		client:  s,
		gateway: strings.TrimRight(gateway, "/"),
	}, nil
}

// PublishFile pins path's contents and returns its CID.
func (p *Publisher) PublishFile(path string) (string, error) {
	if p == nil || p.client == nil {
		return "", fmt.Errorf("publish: not configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	cid, err := p.client.Add(f, shell.Pin(true), shell.CidVersion(1), shell.RawLeaves(true))
	if err != nil {
		return "", err
	}
	return cid, nil
}

// GatewayURL resolves cid to a fetchable URL under the configured
// gateway, or "" if no gateway is configured.
func (p *Publisher) GatewayURL(cid string) string {
	if p == nil || cid == "" || p.gateway == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", p.gateway, cid)
}

// normalizeAPI accepts either a bare host:port, an http(s) URL, or a
// multiaddr (as printed by `ipfs id`) and reduces it to the host:port
// form go-ipfs-api expects.
func normalizeAPI(val string) string {
	trimmed := strings.TrimSpace(val)
	if strings.HasPrefix(trimmed, "/") {
		if hostPort := multiaddrToHostPort(trimmed); hostPort != "" {
			return hostPort
		}
	}
	trimmed = strings.TrimPrefix(trimmed, "http://")
	trimmed = strings.TrimPrefix(trimmed, "https://")
	trimmed = strings.TrimSuffix(trimmed, "/api/v0")
	return strings.Trim(trimmed, "/")
}

func multiaddrToHostPort(addr string) string {
	parts := strings.Split(addr, "/")
	var host, port string
	for i := 0; i < len(parts); i++ {
		switch parts[i] {
		case "ip4", "ip6", "dns", "dns4", "dns6":
			if i+1 < len(parts) {
				host = parts[i+1]
				i++
			}
		case "tcp":
			if i+1 < len(parts) {
				port = parts[i+1]
				i++
			}
		}
	}
	if host != "" && port != "" {
		return fmt.Sprintf("%s:%s", host, port)
	}
	return ""
}
