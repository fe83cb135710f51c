package main

import (
	"flag"
	"fmt"
	"net/netip"
	"time"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/allen/pkg/chain"
	"github.com/henderiw/allen/pkg/compare"
	"github.com/henderiw/allen/pkg/fail"
	"github.com/henderiw/allen/pkg/interval"
	"github.com/henderiw/allen/pkg/ipinterval"
	"github.com/shopspring/decimal"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/klog/v2"
)

var phases = []struct {
	start  time.Duration
	labels map[string]string
}{
	{start: 48 * time.Hour, labels: map[string]string{"phase": "rollout"}},
	{start: 0, labels: map[string]string{"phase": "design"}},
	{start: 24 * time.Hour, labels: map[string]string{"phase": "build"}},
	{start: 72 * time.Hour, labels: map[string]string{"phase": "operate"}},
}

var prefixes = map[string]string{
	"10.0.2.0/24":   "edge",
	"10.0.0.0/24":   "core",
	"10.0.1.0/24":   "access",
	"10.0.64.0/18":  "pool",
	"10.0.128.0/17": "pool",
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	fail.SetLogger(klog.Background())

	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	var plan []chain.Link[time.Time]
	for _, p := range phases {
		plan = append(plan, chain.Link[time.Time]{Start: t0.Add(p.start), Labels: p.labels})
	}
	seq := chain.ToGaplessLeftDefiniteSequence(plan, nil)
	for _, s := range seq {
		fmt.Println("span", s.String())
	}
	if s, ok := chain.Locate(seq, t0.Add(30*time.Hour), nil); ok {
		fmt.Println("at +30h", s.Labels["phase"])
	}

	spans := make([]interval.Interval[time.Time], 0, len(seq)-1)
	for _, s := range seq[:len(seq)-1] {
		spans = append(spans, s.Interval())
	}
	m := interval.MinimalEnclosing(spans, nil)
	fmt.Println("enclosing", m.String(), "minimal", interval.IsMinimalEnclosing(m, spans, nil))
	for _, s := range spans {
		fmt.Println("relation", m.String(), interval.Relate(m, s, nil).String(), s.String())
	}

	prices := []chain.Link[decimal.Decimal]{
		{Start: decimal.RequireFromString("9.99"), Labels: labels.Set{"tier": "basic"}},
		{Start: decimal.RequireFromString("0"), Labels: labels.Set{"tier": "free"}},
		{Start: decimal.RequireFromString("49.50"), Labels: labels.Set{"tier": "pro"}},
	}
	for _, s := range chain.ToGaplessLeftDefiniteSequence(prices, nil) {
		fmt.Println("tier", s.String())
	}

	dup := append(prices, chain.Link[decimal.Decimal]{Start: decimal.RequireFromString("9.990")})
	if err := chain.Validate(dup, nil); err != nil {
		klog.InfoS("rejected price chain", "err", err)
	}
	if _, err := compare.TryCompare(1, "a"); err != nil {
		klog.InfoS("incomparable", "err", err)
	}

	var routes table.Routes
	for prefix, role := range prefixes {
		routes = append(routes, table.NewRoute(netip.MustParsePrefix(prefix), map[string]string{"role": role}, nil))
	}
	if r, ok := ipinterval.ToIPRange(ipinterval.RoutesEnclosing(routes)); ok {
		fmt.Println("routes enclosed by", r.String())
	}
	links := ipinterval.ChainFromRoutes(routes)
	addrs := ipinterval.Compare
	selector := labels.SelectorFromSet(labels.Set{"role": "pool"})
	for _, s := range chain.ToGaplessLeftDefiniteSequence(links, addrs) {
		if selector.Matches(s.Labels) {
			fmt.Println("pool", s.String())
		}
	}
	fmt.Println("10.0.0.0/25 vs 10.0.0.128/25",
		ipinterval.Relate(netip.MustParsePrefix("10.0.0.0/25"), netip.MustParsePrefix("10.0.0.128/25")).String())
}
