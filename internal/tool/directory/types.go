package directory

// -- List Files --

type ListFilesRequest struct {
	// Path is optional; empty means the working directory itself.
	Path string `json:"directory" mapstructure:"directory"`
}

// Entry is one child of the listed directory.
type Entry struct {
	Name        string
	IsDirectory bool
}

type ListFilesResponse struct {
	AbsolutePath string
	RelativePath string
	Entries      []Entry
}

// -- Set Working Directory --

type SetWorkingDirectoryRequest struct {
	Path string `json:"directory" mapstructure:"directory"`
}

func (r *SetWorkingDirectoryRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type SetWorkingDirectoryResponse struct {
	AbsolutePath string
}
