package entity

import "github.com/samber/lo"

// Severity уровень серьёзности находки
type Severity string

const (
	SeverityHigh    Severity = "High Severity"
	SeverityMedium  Severity = "Medium Severity"
	SeverityLow     Severity = "Low Severity"
	SeverityUnknown Severity = "Unknown Severity"
)

const (
	// LabelNoTumor — зарезервированный класс "опухоли нет", обрабатывается отдельно и серьёзности не имеет
	LabelNoTumor = "No-Tumor"
	// LabelUnknownType — метка для классов, отсутствующих в таблице
	LabelUnknownType = "Unknown Type"
)

// classNames — фиксированная таблица классов модели.
// Порядок соответствует датасету: 0 Glioma, 1 Meningioma, 2 No-Tumor, 3 Pituitary.
var classNames = map[int]string{
	0: "Glioma Tumor",
	1: "Meningioma Tumor",
	2: LabelNoTumor,
	3: "Pituitary Tumor",
}

// severityByClass — фиксированная таблица серьёзности по классам.
// Класс 2 (No-Tumor) в таблице отсутствует намеренно.
var severityByClass = map[int]Severity{
	0: SeverityHigh,
	1: SeverityLow,
	3: SeverityMedium,
}

// Finding — находка для показа пользователю: метка и серьёзность
type Finding struct {
	Label    string
	Severity Severity
}

// Display возвращает строку вида "Glioma Tumor (High Severity)"
func (f Finding) Display() string {
	return f.Label + " (" + string(f.Severity) + ")"
}

// ClassName возвращает метку класса по индексу
func ClassName(classID int) string {
	if name, ok := classNames[classID]; ok {
		return name
	}
	return LabelUnknownType
}

// ClassSeverity возвращает серьёзность класса по индексу
func ClassSeverity(classID int) Severity {
	if severity, ok := severityByClass[classID]; ok {
		return severity
	}
	return SeverityUnknown
}

// Interpret превращает сырые детекции в список находок без дублей
// (порядок первого вхождения сохраняется). Класс No-Tumor в список не
// попадает и только взводит флаг noTumorSeen: если в одном наборе есть и
// настоящие находки, и No-Tumor, приоритет остаётся за находками —
// поведение исходной модели сохранено как есть.
func Interpret(detections []Detection) (findings []Finding, noTumorSeen bool) {
	for _, det := range detections {
		name := ClassName(det.ClassID)
		if name == LabelNoTumor {
			noTumorSeen = true
			continue
		}

		findings = append(findings, Finding{
			Label:    name,
			Severity: ClassSeverity(det.ClassID),
		})
	}

	return lo.UniqBy(findings, func(f Finding) string { return f.Label }), noTumorSeen
}

// Labels возвращает метки находок в исходном порядке
func Labels(findings []Finding) []string {
	return lo.Map(findings, func(f Finding, _ int) string { return f.Label })
}
