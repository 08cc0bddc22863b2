package model

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownServiceMethod is returned by SelectServices for selected methods
// the model does not contain.
var ErrUnknownServiceMethod = errors.New("unknown service methods")

// Answers holds generator answers supplied externally instead of through an
// interactive prompt.
type Answers struct {
	// ServiceMethods restricts generation to the listed methods.
	// Empty means every method of every service.
	ServiceMethods []MethodInfo `json:"serviceMethods,omitempty"`
}

// DecodeAnswers decodes base64-encoded JSON answers.
func DecodeAnswers(encoded string) (*Answers, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	var a Answers
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return &a, nil
}

// EncodeAnswers is the inverse of DecodeAnswers.
func EncodeAnswers(a *Answers) (string, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// FindServiceMethod returns the service and every overload of the named method.
// ok is false when either the service or the method does not exist.
func (pm *ProjectModel) FindServiceMethod(info MethodInfo) (svc *ServiceDescriptor, overloads []MethodDescriptor, ok bool) {
	svc = pm.FindService(info.ServiceName)
	if svc == nil {
		return nil, nil, false
	}
	for _, m := range svc.Methods {
		if m.Name == info.MethodName {
			overloads = append(overloads, m)
		}
	}
	if len(overloads) == 0 {
		return nil, nil, false
	}
	return svc, overloads, true
}

// SelectServices keeps only the selected methods, preserving model order.
// Services left without methods are dropped. An empty selection returns services unchanged.
func SelectServices(services []ServiceDescriptor, selection []MethodInfo) ([]ServiceDescriptor, error) {
	if len(selection) == 0 {
		return services, nil
	}

	wanted := make(map[MethodInfo]bool, len(selection))
	for _, info := range selection {
		wanted[info] = true
	}

	var result []ServiceDescriptor
	for _, svc := range services {
		var methods []MethodDescriptor
		for _, m := range svc.Methods {
			info := MethodInfo{ServiceName: svc.Name, MethodName: m.Name}
			if wanted[info] {
				methods = append(methods, m)
			}
		}
		if len(methods) > 0 {
			result = append(result, ServiceDescriptor{Name: svc.Name, Methods: methods})
		}
	}

	var missing []string
	for _, info := range selection {
		if !containsMethod(result, info) {
			missing = append(missing, info.String())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownServiceMethod, strings.Join(missing, ", "))
	}
	return result, nil
}

func containsMethod(services []ServiceDescriptor, info MethodInfo) bool {
	for _, svc := range services {
		if svc.Name != info.ServiceName {
			continue
		}
		for _, m := range svc.Methods {
			if m.Name == info.MethodName {
				return true
			}
		}
	}
	return false
}
