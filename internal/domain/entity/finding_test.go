package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpret_NoTumorOnly(t *testing.T) {
	findings, noTumor := Interpret([]Detection{{ClassID: 2, Confidence: 0.95}})
	require.Empty(t, findings)
	require.True(t, noTumor)
}

func TestInterpret_FindingsTakePriorityOverNoTumor(t *testing.T) {
	findings, noTumor := Interpret([]Detection{
		{ClassID: 0, Confidence: 0.9},
		{ClassID: 0, Confidence: 0.5},
		{ClassID: 2, Confidence: 0.99},
	})
	require.True(t, noTumor)
	require.Equal(t, []Finding{{Label: "Glioma Tumor", Severity: SeverityHigh}}, findings)
}

func TestInterpret_DeduplicatesPreservingOrder(t *testing.T) {
	findings, _ := Interpret([]Detection{
		{ClassID: 1, Confidence: 0.8},
		{ClassID: 3, Confidence: 0.7},
		{ClassID: 1, Confidence: 0.6},
		{ClassID: 3, Confidence: 0.5},
	})
	require.Equal(t, []string{"Meningioma Tumor", "Pituitary Tumor"}, Labels(findings))
}

func TestInterpret_DeduplicationIsIdempotent(t *testing.T) {
	withDuplicates, _ := Interpret([]Detection{
		{ClassID: 0, Confidence: 0.9},
		{ClassID: 0, Confidence: 0.4},
		{ClassID: 3, Confidence: 0.8},
	})
	withoutDuplicates, _ := Interpret([]Detection{
		{ClassID: 0, Confidence: 0.9},
		{ClassID: 3, Confidence: 0.8},
	})
	require.Equal(t, withoutDuplicates, withDuplicates)
}

func TestInterpret_EmptyInput(t *testing.T) {
	findings, noTumor := Interpret(nil)
	require.Empty(t, findings)
	require.False(t, noTumor)
}

func TestInterpret_UnknownClass(t *testing.T) {
	findings, noTumor := Interpret([]Detection{{ClassID: 42, Confidence: 0.7}})
	require.False(t, noTumor)
	require.Equal(t, []Finding{{Label: LabelUnknownType, Severity: SeverityUnknown}}, findings)
}

func TestClassTables(t *testing.T) {
	require.Equal(t, "Glioma Tumor", ClassName(0))
	require.Equal(t, LabelNoTumor, ClassName(2))
	require.Equal(t, LabelUnknownType, ClassName(99))

	require.Equal(t, SeverityHigh, ClassSeverity(0))
	require.Equal(t, SeverityLow, ClassSeverity(1))
	require.Equal(t, SeverityMedium, ClassSeverity(3))
	require.Equal(t, SeverityUnknown, ClassSeverity(2))
}

func TestFindingDisplay(t *testing.T) {
	f := Finding{Label: "Glioma Tumor", Severity: SeverityHigh}
	require.Equal(t, "Glioma Tumor (High Severity)", f.Display())
}
