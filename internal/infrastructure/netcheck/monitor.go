// Package netcheck probes network connectivity and responsiveness for the
// AI backend selector's auto-mode decisions. Probe results are cached for a
// short TTL so repeated mode resolutions do not hammer the network.
package netcheck

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/ports"
)

// Monitor caches connectivity probes behind a single TTL window. Both
// booleans share one window: within the TTL, reads return the cached values
// even if real conditions changed.
type Monitor struct {
	probeHosts    []string
	httpEndpoints []string
	ttl           time.Duration
	log           ports.Logger

	// dial, headCheckFn and now are injectable for tests.
	dial        func(ctx context.Context, host string, timeout time.Duration) bool
	headCheckFn func(ctx context.Context, endpoint string) bool
	httpClient  *http.Client
	now         func() time.Time

	mu          sync.Mutex
	cachedOnline *bool
	cachedFast   *bool
	lastCheck    time.Time
}

// New builds a Monitor from the network section of the config.
func New(cfg domain.NetworkSettings, log ports.Logger) *Monitor {
	hosts := cfg.ProbeHosts
	if len(hosts) == 0 {
		hosts = []string{"8.8.8.8", "1.1.1.1"}
	}
	endpoints := cfg.HTTPEndpoints
	if len(endpoints) == 0 {
		endpoints = []string{"https://www.google.com", "https://www.cloudflare.com"}
	}
	ttl := domain.DefaultNetworkCacheTTL
	if cfg.CacheTTLSeconds > 0 {
		ttl = time.Duration(cfg.CacheTTLSeconds) * time.Second
	}
	m := &Monitor{
		probeHosts:    hosts,
		httpEndpoints: endpoints,
		ttl:           ttl,
		log:           log,
		dial:          dialProbe,
		httpClient:    &http.Client{Timeout: domain.HTTPProbeTimeout},
		now:           time.Now,
	}
	m.headCheckFn = m.headCheck
	return m
}

// IsOnline reports cached reachability, probing on a cache miss.
func (m *Monitor) IsOnline(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cacheValid() && m.cachedOnline != nil {
		return *m.cachedOnline
	}
	online := m.probeConnectivity(ctx)
	m.cachedOnline = &online
	m.cachedFast = nil
	m.lastCheck = m.now()
	return online
}

// IsFastNetwork reports whether the network is responsive enough for cloud
// API calls. Only evaluated when online; probe errors mean "not fast", not
// "offline".
func (m *Monitor) IsFastNetwork(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cacheValid() && m.cachedFast != nil {
		return *m.cachedFast
	}

	online := m.cachedOnline
	if !m.cacheValid() || online == nil {
		probed := m.probeConnectivity(ctx)
		online = &probed
		m.cachedOnline = online
		m.lastCheck = m.now()
	}

	fast := false
	if *online {
		fast = m.probeSpeed(ctx)
	}
	m.cachedFast = &fast
	return fast
}

// Status condenses both probes into one snapshot.
func (m *Monitor) Status(ctx context.Context) domain.NetworkStatus {
	online := m.IsOnline(ctx)
	fast := false
	if online {
		fast = m.IsFastNetwork(ctx)
	}
	m.mu.Lock()
	checked := m.lastCheck
	m.mu.Unlock()
	return domain.NetworkStatus{Online: online, Fast: fast, CheckedAt: checked}
}

// Refresh invalidates both cached values; the next read re-probes.
func (m *Monitor) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cachedOnline = nil
	m.cachedFast = nil
	m.lastCheck = time.Time{}
}

func (m *Monitor) cacheValid() bool {
	return m.now().Sub(m.lastCheck) < m.ttl
}

// probeConnectivity tries reachability probes first, then falls back to
// HTTP HEAD. Any success marks online.
func (m *Monitor) probeConnectivity(ctx context.Context) bool {
	for _, host := range m.probeHosts {
		if m.dial(ctx, host, domain.PingTimeout) {
			return true
		}
	}
	for _, endpoint := range m.httpEndpoints {
		if m.headCheckFn(ctx, endpoint) {
			return true
		}
	}
	if m.log != nil {
		m.log.Debug("all connectivity probes failed", nil)
	}
	return false
}

func (m *Monitor) headCheck(ctx context.Context, endpoint string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return false
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

// probeSpeed measures one round trip to the primary endpoint and classifies
// "fast" iff it completes under the threshold.
func (m *Monitor) probeSpeed(ctx context.Context) bool {
	start := m.now()
	if !m.headCheckFn(ctx, m.httpEndpoints[0]) {
		return false
	}
	return m.now().Sub(start) < domain.FastNetworkThreshold
}

// dialProbe checks host reachability with a TCP dial to the DNS port; the
// anchors are public DNS resolvers, so an open socket is as good as a ping.
func dialProbe(ctx context.Context, host string, timeout time.Duration) bool {
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, "53"))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

var _ ports.NetworkMonitor = (*Monitor)(nil)
