package chart

import "math"

// renkoBrick is one renko box; Bottom is the lower price edge.
type renkoBrick struct {
	Bottom float64
	Up     bool
}

// pnfColumn is one point-and-figure column of Count boxes stacked from
// Bottom upward.
type pnfColumn struct {
	Bottom float64
	Count  int
	Up     bool
}

// atrBrickSize derives a renko brick / pnf box size from the average true
// range over up to 14 periods, falling back to 1% of the last close for
// degenerate series.
func atrBrickSize(rows []FrameRow) float64 {
	n := len(rows)
	if n == 0 {
		return 1
	}
	period := 14
	if n-1 < period {
		period = n - 1
	}
	var sum float64
	for i := n - period; i < n; i++ {
		tr := rows[i].High - rows[i].Low
		prevClose := rows[i-1].Close
		tr = math.Max(tr, math.Abs(rows[i].High-prevClose))
		tr = math.Max(tr, math.Abs(rows[i].Low-prevClose))
		sum += tr
	}
	if period > 0 {
		if atr := sum / float64(period); atr > 0 {
			return atr
		}
	}
	if b := rows[n-1].Close * 0.01; b > 0 {
		return b
	}
	return 1
}

// buildRenko converts closes into a brick sequence: a new brick for every
// full brick-size move of the close beyond the last brick edge.
func buildRenko(rows []FrameRow, brick float64) []renkoBrick {
	if len(rows) == 0 || brick <= 0 {
		return nil
	}
	var bricks []renkoBrick
	ref := rows[0].Close
	for _, r := range rows[1:] {
		for r.Close >= ref+brick {
			bricks = append(bricks, renkoBrick{Bottom: ref, Up: true})
			ref += brick
		}
		for r.Close <= ref-brick {
			ref -= brick
			bricks = append(bricks, renkoBrick{Bottom: ref, Up: false})
		}
	}
	return bricks
}

// buildPointFigure converts closes into X/O columns with the classic
// three-box reversal rule.
func buildPointFigure(rows []FrameRow, box float64, reversal int) []pnfColumn {
	if len(rows) == 0 || box <= 0 {
		return nil
	}
	if reversal < 1 {
		reversal = 3
	}

	const eps = 1e-9
	var cols []pnfColumn
	cur := pnfColumn{Bottom: math.Floor(rows[0].Close/box) * box, Count: 1, Up: true}

	for _, r := range rows[1:] {
		if cur.Up {
			top := cur.Bottom + float64(cur.Count)*box
			if n := int(math.Floor((r.Close-top)/box + eps)); n >= 1 {
				cur.Count += n
				continue
			}
			if n := int(math.Floor((top-box-r.Close)/box + eps)); n >= reversal {
				cols = append(cols, cur)
				cur = pnfColumn{Bottom: top - box - float64(n)*box, Count: n, Up: false}
			}
			continue
		}
		if n := int(math.Floor((cur.Bottom-r.Close)/box + eps)); n >= 1 {
			cur.Bottom -= float64(n) * box
			cur.Count += n
			continue
		}
		if n := int(math.Floor((r.Close-(cur.Bottom+box))/box + eps)); n >= reversal {
			cols = append(cols, cur)
			cur = pnfColumn{Bottom: cur.Bottom + box, Count: n, Up: true}
		}
	}
	cols = append(cols, cur)
	return cols
}
