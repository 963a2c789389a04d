package pkg

import (
	"fmt"
	"net/http"
	"net/netip"
	"strings"
)

const LocalClient = "localhost"

// docker assigns its bridge networks out of this range
var dockerBridgeNetworks = netip.MustParsePrefix("172.16.0.0/12")

// ParseClientAddr accepts a bare IP or an ip:port pair, IPv6 in brackets or not.
func ParseClientAddr(addr string) (netip.Addr, error) {
	addr = strings.TrimSpace(addr)
	if addrPort, err := netip.ParseAddrPort(addr); err == nil {
		return addrPort.Addr().Unmap(), nil
	}
	ip, err := netip.ParseAddr(strings.Trim(addr, "[]"))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip addr %s is invalid", addr)
	}
	return ip.Unmap(), nil
}

// IPIsLocal reports whether addr is a loopback or docker bridge address,
// i.e. a request from local development or a sibling container.
func IPIsLocal(addr string) bool {
	ip, err := ParseClientAddr(addr)
	if err != nil {
		return false
	}
	return isLocal(ip)
}

func isLocal(ip netip.Addr) bool {
	return ip.IsLoopback() || dockerBridgeNetworks.Contains(ip)
}

// ReadUserIP returns the client IP, preferring the proxy headers over the
// remote address. Local addresses are all reported as LocalClient, so they
// share one rate limit bucket.
func ReadUserIP(r *http.Request) (string, error) {
	candidate := r.Header.Get("X-Real-Ip")
	if candidate == "" {
		// first hop is the client
		candidate, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
	}
	if strings.TrimSpace(candidate) == "" {
		candidate = r.RemoteAddr
	}

	ip, err := ParseClientAddr(candidate)
	if err != nil {
		return "", err
	}
	if isLocal(ip) {
		return LocalClient, nil
	}
	return ip.String(), nil
}
