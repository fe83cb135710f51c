// Package ipinterval maps IP ranges, prefixes and nipam routes onto address
// intervals.
//
// An IP range [from, to] becomes the interval [from, to.Next()[, so that
// adjacent prefixes meet instead of preceding each other. A range that ends
// with the last address of its family has an indefinite end.
package ipinterval

import (
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/allen/pkg/chain"
	"github.com/henderiw/allen/pkg/compare"
	"github.com/henderiw/allen/pkg/interval"
	"github.com/iotaledger/hive.go/lo"
	"go4.org/netipx"
)

// Compare orders addresses with netip.Addr.Compare. IPv4 sorts before IPv6.
var Compare = compare.ByMethod[netip.Addr]()

func FromIPRange(r netipx.IPRange) interval.Interval[netip.Addr] {
	if !r.IsValid() {
		return interval.Indefinite[netip.Addr]()
	}
	i := interval.From(r.From())
	if next := r.To().Next(); next.IsValid() {
		i = i.WithEnd(next)
	}
	return i
}

// ToIPRange returns the range covered by i. It fails when i has an
// indefinite start, when its bounds belong to different families or when
// i is empty.
func ToIPRange(i interval.Interval[netip.Addr]) (netipx.IPRange, bool) {
	from, ok := i.Start()
	if !ok || !from.IsValid() {
		return netipx.IPRange{}, false
	}
	to := lastAddr(from)
	if end, ok := i.End(); ok {
		to = end.Prev()
	}
	r := netipx.IPRangeFrom(from, to)
	return r, r.IsValid()
}

func FromPrefix(p netip.Prefix) interval.Interval[netip.Addr] {
	return FromIPRange(netipx.RangeOfPrefix(p.Masked()))
}

// Relate returns the relation between the address ranges of two prefixes.
func Relate(a, b netip.Prefix) interval.Relation {
	return interval.Relate(FromPrefix(a), FromPrefix(b), Compare)
}

// RoutesEnclosing returns the smallest interval covering every route prefix.
// Compare orders IPv4 before IPv6, so routes of both families yield an
// interval that spans the family boundary; ToIPRange rejects such an
// interval.
func RoutesEnclosing(routes table.Routes) interval.Interval[netip.Addr] {
	is := lo.Map(routes, func(route table.Route) interval.Interval[netip.Addr] {
		return FromPrefix(route.Prefix())
	})
	return interval.MinimalEnclosing(is, Compare)
}

// ChainFromRoutes uses the first address of every route prefix as a chain
// start and keeps the route labels as payload.
func ChainFromRoutes(routes table.Routes) []chain.Link[netip.Addr] {
	return lo.Map(routes, func(route table.Route) chain.Link[netip.Addr] {
		return chain.Link[netip.Addr]{
			Start:  route.Prefix().Masked().Addr(),
			Labels: route.Labels(),
		}
	})
}

func lastAddr(a netip.Addr) netip.Addr {
	if a.Is4() {
		return netip.AddrFrom4([4]byte{255, 255, 255, 255})
	}
	var b [16]byte
	for idx := range b {
		b[idx] = 0xff
	}
	return netip.AddrFrom16(b)
}
