package file

// workdirState provides the working directory snapshot tools resolve against.
// Each Run reads it exactly once so a concurrent set_working_directory cannot
// change the root mid-operation.
type workdirState interface {
	Get() string
}
