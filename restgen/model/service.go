package model

// ServiceDescriptor represents a named collection of remotely invocable methods.
type ServiceDescriptor struct {
	// Name is the service identifier as registered on the server (e.g. "scr_FavoriteService").
	// Unique within a model.
	Name string `json:"name" validate:"required"`

	// Methods contains the service methods in declaration order.
	// Several methods may share a name; they are overloads of one another.
	Methods []MethodDescriptor `json:"methods" validate:"dive"`
}

// MethodDescriptor represents one service method signature.
type MethodDescriptor struct {
	// Name is the method name. Not unique within a service.
	Name string `json:"name" validate:"required"`

	// Params contains the method parameters in declaration order.
	Params []ParameterDescriptor `json:"params" validate:"unique=Name,dive"`
}

// ParameterDescriptor represents a single method parameter.
type ParameterDescriptor struct {
	// Name is the parameter name, used as the property name in the parameter object.
	Name string `json:"name" validate:"required"`

	// Type is the Java type name as exported by the model
	// (e.g. "int", "java.lang.String", "java.util.List<com.company.User>").
	Type string `json:"type" validate:"required"`
}

// MethodInfo identifies a service method by name.
type MethodInfo struct {
	ServiceName string `json:"serviceName"`
	MethodName  string `json:"methodName"`
}

// String returns "Service.method".
func (m MethodInfo) String() string {
	return m.ServiceName + "." + m.MethodName
}

// HasParams reports whether any of the given methods declares a parameter.
func HasParams(methods []MethodDescriptor) bool {
	for _, m := range methods {
		if len(m.Params) > 0 {
			return true
		}
	}
	return false
}
