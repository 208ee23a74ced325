package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/agent"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/deploy"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/pipeline"
)

// buildRequest is the body of POST /api/build-poc.
type buildRequest struct {
	Requirement string `json:"requirement"`
}

// buildResponse wraps the final workflow state of one pipeline run.
type buildResponse struct {
	Status    string                `json:"status"`
	ProjectID string                `json:"project_id,omitempty"`
	State     *domain.WorkflowState `json:"state"`
}

// projectView is the wire representation of a registered project.
type projectView struct {
	ID          string    `json:"id"`
	Requirement string    `json:"requirement"`
	CreatedAt   time.Time `json:"created_at"`
	Running     bool      `json:"running"`
	PID         int       `json:"pid,omitempty"`
	BackendURL  string    `json:"backend_url,omitempty"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "POC Builder",
		"version": Version,
		"endpoints": []string{
			"GET /api/health",
			"GET /api/agents",
			"GET /api/models",
			"GET /api/workflow/info",
			"POST /api/build-poc",
			"GET /api/projects",
			"GET /api/projects/{id}",
			"GET /api/projects/{id}/frontend",
			"DELETE /api/projects/{id}",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":             "healthy",
		"active_deployments": s.opts.Registry.Len(),
	})
}

func (s *Server) handleAgents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"agents": s.opts.AgentInfos,
		"count":  len(s.opts.AgentInfos),
	})
}

func (s *Server) handleModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"models": s.opts.Models})
}

func (s *Server) handleWorkflowInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, pipeline.Info())
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Requirement) == "" {
		writeError(w, http.StatusBadRequest, "requirement must not be empty")
		return
	}

	launcher := s.opts.NewLauncher()
	deployer := agent.NewDeployer(launcher, s.logger)
	orch := pipeline.New(
		s.opts.Stages.Refiner,
		s.opts.Stages.Architect,
		s.opts.Stages.Backend,
		s.opts.Stages.Frontend,
		s.opts.Stages.Reviewer,
		deployer,
		s.logger,
	)

	state := orch.Execute(r.Context(), req.Requirement)

	resp := buildResponse{Status: "completed", State: state}
	if state.Failed() {
		resp.Status = "failed"
	}
	if state.Deployment != nil {
		resp.ProjectID = state.Deployment.ProjectID
	}

	// Only a live process is worth tracking. Anything else gets stopped so
	// a failed launch never leaks its working directory.
	if state.Deployment != nil && state.Deployment.PID > 0 {
		project := &deploy.Project{
			ID:          state.Deployment.ProjectID,
			Requirement: req.Requirement,
			CreatedAt:   time.Now(),
			Launcher:    launcher,
		}
		if err := s.opts.Registry.Register(project); err != nil {
			s.logger.Error().Err(err).Str("project_id", project.ID).Msg("failed to register project")
			launcher.Stop()
		}
	} else {
		launcher.Stop()
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	projects := s.opts.Registry.List()
	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, s.projectView(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"projects": views,
		"count":    len(views),
	})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.opts.Registry.Lookup(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, s.projectView(project))
}

func (s *Server) handleProjectFrontend(w http.ResponseWriter, r *http.Request) {
	project, err := s.opts.Registry.Lookup(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	status := project.Launcher.Status()
	if status.WorkDir == "" {
		writeError(w, http.StatusNotFound, "frontend not available")
		return
	}
	path := filepath.Join(status.WorkDir, constants.FrontendFileName)
	if _, statErr := os.Stat(path); statErr != nil {
		writeError(w, http.StatusNotFound, "frontend not available")
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleStopProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.opts.Registry.Stop(id); err != nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "stopped",
		"project_id": id,
	})
}

func (s *Server) projectView(p *deploy.Project) projectView {
	status := p.Launcher.Status()
	view := projectView{
		ID:          p.ID,
		Requirement: p.Requirement,
		CreatedAt:   p.CreatedAt,
		Running:     status.Running,
		PID:         status.PID,
	}
	if status.Running {
		view.BackendURL = fmt.Sprintf("http://localhost:%d", s.opts.BackendPort)
	}
	return view
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
