package cable

// Power is the result of one propagation walk.
type Power struct {
	HasPower      bool // the walk reached the end without a conflict
	PoweredSpools int
}

// Propagate walks a classified chain from Start to End and marks the
// nodes that receive power. Isolated, non-overlapping entries are
// transparent. An overlapping entry is powered itself but cuts power for
// everything after it. Reaching a node that is already powered marks it
// and the cable overpowered and ends the walk.
//
// Node power flags must be reset before the first chain is propagated on
// a tick.
func (c *Chain) Propagate() Power {
	p := Power{HasPower: true}
	for _, a := range c.Attachments {
		if !p.HasPower {
			break
		}
		if a.Isolated && !a.Overlap {
			continue
		}
		n := a.Node
		if n.Powered {
			n.Overpowered = true
			c.Overpowered = true
			break
		}
		n.Powered = true
		if a.Overlap {
			p.HasPower = false
		} else if n.Kind == Spool {
			p.PoweredSpools++
		}
	}
	return p
}

// Complete reports whether a propagation result solves a level: power
// made it through, the end terminal is plugged in, nothing overpowered
// and every spool is lit.
func (c *Chain) Complete(p Power, connected bool, totalSpools int) bool {
	return p.HasPower && connected && !c.Overpowered && p.PoweredSpools == totalSpools
}
