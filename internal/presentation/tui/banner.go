package tui

import (
	"fmt"
	"io"
)

// PrintBanner writes the server banner to w.
func (s Styles) PrintBanner(w io.Writer, subtitle string) {
	s1 := s.profile.String("   _ __  / _| __ _ ").Foreground(s.profile.Color("#818cf8"))
	s2 := s.profile.String("  | '_ \\| |_ / _` |").Foreground(s.profile.Color("#a78bfa"))
	s3 := s.profile.String("  | | | |  _| (_| |").Foreground(s.profile.Color("#c084fc"))
	s4 := s.profile.String("  |_| |_|_|  \\__,_|").Foreground(s.profile.Color("#e879f9"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w, s3)
	fmt.Fprintln(w, s4)
	if subtitle != "" {
		fmt.Fprintln(w, s.profile.String("  "+subtitle).Faint())
	}
	fmt.Fprintln(w)
}
