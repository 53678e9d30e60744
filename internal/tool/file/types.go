package file

// -- Create File --

type CreateFileRequest struct {
	Path    string `json:"filepath" mapstructure:"filepath"`
	Content string `json:"content" mapstructure:"content"`
}

func (r *CreateFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	// Empty content is a valid write; absence of the content argument is
	// caught at the dispatch layer where the raw argument bag is visible.
	return nil
}

type CreateFileResponse struct {
	AbsolutePath string
	RelativePath string
	BytesWritten int
}

// -- Edit File --

type EditFileRequest struct {
	Path    string `json:"filepath" mapstructure:"filepath"`
	Content string `json:"content" mapstructure:"content"`
}

func (r *EditFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type EditFileResponse struct {
	AbsolutePath string
	RelativePath string
	BytesWritten int
}

// -- Delete File --

type DeleteFileRequest struct {
	Path string `json:"filepath" mapstructure:"filepath"`
}

func (r *DeleteFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type DeleteFileResponse struct {
	AbsolutePath string
	RelativePath string
}

// -- Read File --

type ReadFileRequest struct {
	Path string `json:"filepath" mapstructure:"filepath"`
}

func (r *ReadFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type ReadFileResponse struct {
	Content      string
	AbsolutePath string
	RelativePath string
	Size         int64
}
