package domain

// ExerciseKind names an activity. The canonical kinds below are the ones the
// built-in MET tables calibrate; any other non-empty name is accepted and
// estimated with the table's default factor.
type ExerciseKind string

const (
	ExerciseWalking  ExerciseKind = "Walking"
	ExerciseRunning  ExerciseKind = "Running"
	ExerciseYoga     ExerciseKind = "Yoga"
	ExerciseSports   ExerciseKind = "Sports"
	ExerciseSwimming ExerciseKind = "Swimming"
	ExerciseCycling  ExerciseKind = "Cycling"
	ExerciseHiking   ExerciseKind = "Hiking/Trekking"
)

// CanonicalExercises lists the fixed exercise set in display order.
var CanonicalExercises = []ExerciseKind{
	ExerciseWalking,
	ExerciseRunning,
	ExerciseYoga,
	ExerciseSports,
	ExerciseSwimming,
	ExerciseCycling,
	ExerciseHiking,
}

func (k ExerciseKind) String() string {
	return string(k)
}
