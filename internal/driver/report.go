package driver

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// HumanReadable formats a byte count using binary prefixes (B, K, M,
// G, T, P, E), rounding up to one decimal place rather than truncating
// so a count just over a unit boundary doesn't read as the smaller
// unit.
func HumanReadable(n uint64) string {
	const units = "BKMGTPE"
	mantissa := float64(n)
	magnitude := 0
	for mantissa >= 1024 && magnitude < len(units)-1 {
		mantissa /= 1024
		magnitude++
	}

	mantissa = ceilToOneDecimal(mantissa)

	if magnitude == 0 {
		return fmt.Sprintf("%dB", n)
	}
	return fmt.Sprintf("%.1f%cB(%d)", mantissa, units[magnitude], n)
}

func ceilToOneDecimal(v float64) float64 {
	scaled := v * 10
	whole := float64(int64(scaled))
	if scaled > whole {
		whole++
	}
	return whole / 10
}

// Report renders one table row per Stats, comparing every codec's
// compression outcome side by side.
func Report(w io.Writer, stats []Stats) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintln(tw, "method\tcompress success\tcompress fail\tbefore compressed\tafter compressed\tcompression ratio\tcompress time\tuncompress time")
	for _, s := range stats {
		ratio := 0.0
		if s.CompressedBytes > 0 {
			ratio = float64(s.OriginalBytes) / float64(s.CompressedBytes)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%.2f\t%s\t%s\n",
			s.Type, s.CompressSuccess, s.CompressFail,
			HumanReadable(s.OriginalBytes), HumanReadable(s.CompressedBytes),
			ratio, s.CompressTime, s.UncompressTime)
		if s.UncompressFail > 0 {
			fmt.Fprintf(tw, "!!!! uncompress failed %d times for %s !!!!\n", s.UncompressFail, s.Type)
		}
	}
	tw.Flush()
}
