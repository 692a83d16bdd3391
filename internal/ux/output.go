package ux

import (
	"fmt"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// DocHeader prints a timestamped header for one lesson's pipeline run.
func DocHeader(index, total int, relPath string) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Printf("%s[%s]%s  %sLesson %d/%d: %s%s\n",
		Dim, timestamp(), Reset, Bold, index+1, total, relPath, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// Stage prints the pipeline stage a lesson just entered.
func Stage(name string) {
	fmt.Printf("%s[%s]%s  %s· %s%s\n", Dim, timestamp(), Reset, Dim, name, Reset)
}

// DocComplete prints a lesson completion message.
func DocComplete(relPath string, slides int, duration time.Duration) {
	m := int(duration.Minutes())
	s := int(duration.Seconds()) % 60
	fmt.Printf("%s[%s]%s  %s✓ %s — %d slides (%dm %02ds)%s\n",
		Dim, timestamp(), Reset, Green, relPath, slides, m, s, Reset)
}

// DocFail prints a lesson failure message.
func DocFail(relPath, errMsg string) {
	fmt.Printf("%s[%s]%s  %s✗ %s failed: %s%s\n",
		Dim, timestamp(), Reset, Red, relPath, errMsg, Reset)
}

// DocSkip prints a skipped-lesson message (content too short).
func DocSkip(relPath, reason string) {
	fmt.Printf("%s[%s]%s  %s– %s skipped (%s)%s\n",
		Dim, timestamp(), Reset, Dim, relPath, reason, Reset)
}

// Warn prints a non-fatal validation warning.
func Warn(msg string) {
	fmt.Printf("  %s⚠ %s%s\n", Yellow, msg, Reset)
}

// Fatal prints one fatal validation issue.
func Fatal(msg string) {
	fmt.Printf("  %s✗ %s%s\n", Red, msg, Reset)
}

// Summary prints the final batch tally.
func Summary(succeeded, skipped, failed int) {
	if failed == 0 {
		fmt.Printf("\n%s[%s]%s  %s%s══ %d generated, %d skipped ══%s\n\n",
			Dim, timestamp(), Reset, Bold, Green, succeeded, skipped, Reset)
		return
	}
	fmt.Printf("\n%s[%s]%s  %s%s══ %d generated, %d skipped, %d failed ══%s\n\n",
		Dim, timestamp(), Reset, Bold, Red, succeeded, skipped, failed, Reset)
}

// DoctorHint prints a hint to run the doctor after a failed batch.
func DoctorHint() {
	fmt.Printf("%sInspect:%s deckgen doctor\n", Yellow, Reset)
}
