// Package provision turns a manifest into a plan of pending operations and
// executes it. An operation is only planned when the host actually needs it:
// gate commands decide package installs, content diffs decide file writes.
package provision

import (
	"net/http"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/deploy"
	"github.com/dotup-sh/dotup/pkg/install"
	"github.com/dotup-sh/dotup/pkg/manifest"
	"github.com/dotup-sh/dotup/pkg/run"
	"github.com/dotup-sh/dotup/pkg/session"
)

// Operation is one pending provisioning step
type Operation interface {
	// Entry names the manifest entry the operation belongs to
	Entry() string
	// Description is the user-facing summary shown in plans
	Description() string
	// Execute performs the operation
	Execute() error
}

// EntryPlan groups the pending operations of one manifest entry. An entry
// with no operations is up to date.
type EntryPlan struct {
	Name       string
	Operations []Operation
}

// Plan is the ordered set of pending operations for a manifest
type Plan struct {
	Entries []EntryPlan
}

// Pending returns the total number of pending operations
func (p *Plan) Pending() int {
	n := 0
	for _, e := range p.Entries {
		n += len(e.Operations)
	}
	return n
}

// Operations flattens the plan in execution order
func (p *Plan) Operations() []Operation {
	ops := make([]Operation, 0, p.Pending())
	for _, e := range p.Entries {
		ops = append(ops, e.Operations...)
	}
	return ops
}

// Options carries the collaborators needed to build a plan
type Options struct {
	// Runner executes gate commands and, later, install commands
	Runner run.Runner
	// Client downloads remote package files; nil means http.DefaultClient
	Client *http.Client
	// Settings supplies packager configuration
	Settings *config.Settings
	// Env resolves ${VAR} placeholders in target paths
	Env *session.Environment
}

// BuildPlan evaluates every manifest entry against the current host state
func BuildPlan(m *manifest.Manifest, opts Options) (*Plan, error) {
	installer := install.NewInstaller(opts.Runner, opts.Client, opts.Settings.Packager)
	deployer := deploy.NewDeployer(opts.Runner)

	plan := &Plan{}
	for _, entry := range m.Entries {
		ep := EntryPlan{Name: entry.Name}

		if entry.Install != nil {
			step := install.Step{Entry: entry.Name, Spec: *entry.Install}
			if step.Needed(opts.Runner) {
				ep.Operations = append(ep.Operations, &installOperation{
					step:      step,
					installer: installer,
				})
			}
		}

		for _, mapping := range entry.Files {
			target, err := opts.Env.Expand(mapping.Target)
			if err != nil {
				return nil, err
			}
			op, err := deploy.Evaluate(mapping.Source, target)
			if err != nil {
				return nil, err
			}
			if op.Action == deploy.ActionNone {
				continue
			}
			ep.Operations = append(ep.Operations, &fileOperation{
				entry:    entry.Name,
				op:       op,
				deployer: deployer,
			})
		}

		plan.Entries = append(plan.Entries, ep)
	}

	return plan, nil
}

type installOperation struct {
	step      install.Step
	installer *install.Installer
}

func (o *installOperation) Entry() string { return o.step.Entry }

func (o *installOperation) Description() string {
	return "Package will be installed: " + o.step.Spec.Package()
}

func (o *installOperation) Execute() error {
	return o.installer.Install(o.step)
}

type fileOperation struct {
	entry    string
	op       *deploy.FileOp
	deployer *deploy.Deployer
}

func (o *fileOperation) Entry() string { return o.entry }

func (o *fileOperation) Description() string {
	if o.op.Action == deploy.ActionCreate {
		return "File will be created: " + o.op.Target
	}
	return "File will be updated: " + o.op.Target
}

func (o *fileOperation) Execute() error {
	return o.deployer.Apply(o.op)
}
