package audit

import "strings"

// ActionResource holds action and resource derived from a gRPC full method name.
type ActionResource struct {
	Action   string
	Resource string
}

// Context method overrides: audit as switch / resolve on resource "workspace".
const (
	contextSwitchWorkspace  = "/wcp.context.v1.ContextService/SwitchWorkspace"
	contextResolveCurrent   = "/wcp.context.v1.ContextService/ResolveCurrent"
	lifecycleDissolve       = "/wcp.workspace.v1.WorkspaceService/DissolveWorkspace"
)

// ParseFullMethod returns action and resource for a gRPC full method (e.g.
// /wcp.workspace.v1.WorkspaceService/CreateWorkspace). Action is a verb: get,
// list, create, update, delete, or a lowercase method name for others.
// Resource is derived from the service name (e.g. WorkspaceService ->
// workspace). Context switch/resolve and dissolve are mapped explicitly.
func ParseFullMethod(fullMethod string) ActionResource {
	switch fullMethod {
	case contextSwitchWorkspace:
		return ActionResource{Action: "switch", Resource: "workspace"}
	case contextResolveCurrent:
		return ActionResource{Action: "resolve", Resource: "workspace"}
	case lifecycleDissolve:
		return ActionResource{Action: "dissolve", Resource: "workspace"}
	}
	// fullMethod format: /wcp.package.v1.ServiceName/MethodName
	slash := strings.LastIndex(fullMethod, "/")
	if slash < 0 {
		return ActionResource{Action: "unknown", Resource: "unknown"}
	}
	method := fullMethod[slash+1:]
	beforeSlash := fullMethod[:slash]
	dot := strings.LastIndex(beforeSlash, ".")
	if dot < 0 {
		return ActionResource{Action: strings.ToLower(method), Resource: "unknown"}
	}
	serviceName := beforeSlash[dot+1:]
	resource := serviceToResource(serviceName)
	action := methodToAction(method)
	return ActionResource{Action: action, Resource: resource}
}

func serviceToResource(serviceName string) string {
	// WorkspaceService -> workspace, MembershipService -> membership
	s := strings.TrimSuffix(serviceName, "Service")
	if s == "" {
		return "unknown"
	}
	return strings.ToLower(s[0:1]) + s[1:]
}

func methodToAction(method string) string {
	switch {
	case strings.HasPrefix(method, "Get") && method != "Get":
		return "get"
	case strings.HasPrefix(method, "List"):
		return "list"
	case strings.HasPrefix(method, "Create"):
		return "create"
	case strings.HasPrefix(method, "Update"):
		return "update"
	case strings.HasPrefix(method, "Delete"):
		return "delete"
	case strings.HasPrefix(method, "Rename"):
		return "rename"
	case strings.HasPrefix(method, "Switch"):
		return "switch"
	case strings.HasPrefix(method, "Dissolve"):
		return "dissolve"
	case strings.HasPrefix(method, "Archive"):
		return "archive"
	default:
		return strings.ToLower(method)
	}
}
