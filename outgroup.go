package popgen

// Outgroup is the reference sample used to orient derived mutations for the
// Fu and Li D and F tests. It is a tagged variant: either a resolved sample
// group to compare against, or a raw external-mutation count that a caller
// has computed ahead of time. The zero value means no outgroup was
// supplied.
type Outgroup struct {
	group *Group
	count int
	kind  outgroupKind
}

type outgroupKind int

const (
	outgroupMissing outgroupKind = iota
	outgroupSamples
	outgroupCount
)

// OutgroupSamples wraps a resolved outgroup sample.
func OutgroupSamples(g *Group) Outgroup {
	return Outgroup{group: g, kind: outgroupSamples}
}

// OutgroupCount wraps a pre-computed external mutation count, bypassing the
// ingroup/outgroup comparison entirely.
func OutgroupCount(n int) Outgroup {
	return Outgroup{count: n, kind: outgroupCount}
}

// Missing reports whether no outgroup was supplied.
func (o Outgroup) Missing() bool {
	return o.kind == outgroupMissing
}

// Samples returns the outgroup sample group, or nil when the outgroup is a
// raw count or missing.
func (o Outgroup) Samples() *Group {
	return o.group
}

// Count returns the pre-computed external mutation count; ok is false
// unless the outgroup was built with OutgroupCount.
func (o Outgroup) Count() (n int, ok bool) {
	return o.count, o.kind == outgroupCount
}
