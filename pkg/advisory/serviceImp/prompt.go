package serviceImp

import (
	"fmt"
	"strings"

	"farmbook/pkg/contract"
)

// BuildPrompt interpolates whatever the caller supplied. It does not look up
// the referenced field or crop.
func BuildPrompt(in contract.GenerateAdvisoryInput) string {
	var b strings.Builder
	b.WriteString("You are an expert agricultural advisor.\n")
	b.WriteString("Provide actionable farming advice based on the following context:\n")
	if in.Context != nil && strings.TrimSpace(*in.Context) != "" {
		fmt.Fprintf(&b, "Context: %s\n", strings.TrimSpace(*in.Context))
	}
	if in.FieldID != nil {
		fmt.Fprintf(&b, "Field ID: %d\n", *in.FieldID)
	}
	if in.CropID != nil {
		fmt.Fprintf(&b, "Crop ID: %d\n", *in.CropID)
	}
	b.WriteString("\nFocus on practical steps for sowing, irrigation, pest control, or harvest.\n")
	b.WriteString("Keep it concise and relevant to the crop cycle stage.")
	return b.String()
}
