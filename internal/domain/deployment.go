package domain

// DeploymentRecord describes the result of launching a generated backend.
//
// On success every field is populated; on failure only Message and ProjectID
// carry information. The process launcher keeps the only live reference to
// the child process and working directory the record describes.
type DeploymentRecord struct {
	// BackendURL is the fixed well-known local URL of the running backend.
	BackendURL string `json:"backend_url,omitempty"`

	// FrontendPath is the absolute path of the materialized frontend file.
	FrontendPath string `json:"frontend_path,omitempty"`

	// WorkDir is the isolated working directory the project was written to.
	WorkDir string `json:"work_dir,omitempty"`

	// PID is the child process identifier. Zero when the launch failed.
	PID int `json:"process_id,omitempty"`

	// Message is a human-readable status line; on failure it carries the
	// captured diagnostic output or the error description.
	Message string `json:"message"`

	// ProjectID scopes the deployment.
	ProjectID string `json:"project_id"`
}

// DeployStatus is a side-effect-free snapshot of a launched process.
type DeployStatus struct {
	// Running is true while the child process is alive.
	Running bool `json:"running"`

	// PID is the child process identifier when Running, zero otherwise.
	PID int `json:"pid,omitempty"`

	// WorkDir is the project working directory, empty before any deploy
	// and after the directory has been removed.
	WorkDir string `json:"work_dir,omitempty"`
}
