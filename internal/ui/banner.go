package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/EduCatCode/104-test/internal/utils"
)

const bannerText = `
 ██╗ ██████╗ ██╗  ██╗         ██╗ ██████╗ ██████╗ ███████╗
███║██╔═████╗██║  ██║         ██║██╔═══██╗██╔══██╗██╔════╝
╚██║██║██╔██║███████║         ██║██║   ██║██████╔╝███████╗
 ██║████╔╝██║╚════██║    ██   ██║██║   ██║██╔══██╗╚════██║
 ██║╚██████╔╝     ██║    ╚█████╔╝╚██████╔╝██████╔╝███████║
 ╚═╝ ╚═════╝      ╚═╝     ╚════╝  ╚═════╝ ╚═════╝ ╚══════╝
 job market dashboard
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := len(chars) / 2
	if half == 0 {
		half = 1
	}

	var b strings.Builder
	for i, c := range chars {
		b.WriteString(startColor.Fade(0, float32(len(chars)), float32(i%half), endColor).Sprint(c))
	}
	return b.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// FormatURL formats a URL, optionally as a clickable terminal hyperlink using OSC 8 escape sequence
func FormatURL(url string, useHyperlink bool) string {
	if !useHyperlink || url == "" {
		return url
	}
	// BEL terminator is understood by more terminals than ST
	return fmt.Sprintf("\033]8;;%s\a%s\033]8;;\a", url, "View Job")
}

// ColorizeSalary colors a monthly estimate by band
func ColorizeSalary(estimate *float64) string {
	if estimate == nil {
		return pterm.Red(utils.FormatOptionalSalary(nil))
	}

	formatted := utils.FormatSalary(*estimate)

	switch {
	case *estimate >= 80000:
		return pterm.Green(formatted)
	case *estimate >= 50000:
		return pterm.LightGreen(formatted)
	case *estimate >= 35000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
