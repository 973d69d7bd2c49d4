package types

// FaceKind tags a mesh face with the flux procedure that applies to it.
type FaceKind uint8

const (
	FACE_Interior FaceKind = iota
	FACE_LowerBoundary
	FACE_OtherBoundary
	NumFaceKinds int = iota
)

var faceKindPrintNames = []string{"Interior", "Lower Boundary", "Other Boundary"}

func (fk FaceKind) String() string {
	if int(fk) >= len(faceKindPrintNames) {
		return "Unknown"
	}
	return faceKindPrintNames[fk]
}

func (fk FaceKind) IsBoundary() bool {
	return fk != FACE_Interior
}
