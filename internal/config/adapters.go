package config

import (
	"strings"

	"git.home.luguber.info/inful/siteconf/internal/foundation"
)

var adapterKinds = foundation.NewNormalizer(map[string]AdapterKind{
	"vercel":                     AdapterVercel,
	"@astrojs/vercel":            AdapterVercel,
	"@astrojs/vercel/static":     AdapterVercel,
	"@astrojs/vercel/serverless": AdapterVercel,
	"netlify":                    AdapterNetlify,
	"@astrojs/netlify":           AdapterNetlify,
	"node":                       AdapterNode,
	"@astrojs/node":              AdapterNode,
}, "")

func decodeAdapter(path string, v any) (foundation.Option[Adapter], error) {
	if v == nil {
		return foundation.None[Adapter](), nil
	}
	m, ok := asMap(v)
	if !ok {
		return foundation.None[Adapter](), invalidValue(path, v, "expected a single adapter mapping")
	}
	name, err := requireName(path, m)
	if err != nil {
		return foundation.None[Adapter](), err
	}
	kind, ok := adapterKinds.Lookup(name)
	if !ok {
		return foundation.None[Adapter](), invalidValue(joinPath(path, "name"), name,
			"unknown adapter (known: %s)", strings.Join(adapterKinds.Accepted(), ", "))
	}

	opts := without(m, "name")
	a := Adapter{Kind: kind}
	switch kind {
	case AdapterVercel:
		a.Vercel = &VercelOptions{}
		err = decodeStrict(path, opts, a.Vercel)
		if err == nil {
			err = validateVercel(path, a.Vercel)
		}
	case AdapterNetlify:
		a.Netlify = &NetlifyOptions{}
		err = decodeStrict(path, opts, a.Netlify)
	case AdapterNode:
		a.Node = &NodeOptions{}
		err = decodeStrict(path, opts, a.Node)
		if err == nil {
			err = validateNode(path, a.Node)
		}
	}
	if err != nil {
		return foundation.None[Adapter](), err
	}
	return foundation.Some(a), nil
}

func validateVercel(path string, o *VercelOptions) error {
	if o.MaxDuration != nil && *o.MaxDuration <= 0 {
		return invalidValue(joinPath(path, "maxDuration"), *o.MaxDuration, "must be a positive number of seconds")
	}
	if err := requireNonEmpty(joinPath(path, "includeFiles"), o.IncludeFiles); err != nil {
		return err
	}
	return requireNonEmpty(joinPath(path, "excludeFiles"), o.ExcludeFiles)
}

func validateNode(path string, o *NodeOptions) error {
	switch o.Mode {
	case NodeStandalone, NodeMiddleware:
		return nil
	case "":
		return invalidValue(joinPath(path, "mode"), nil, "mode is required (standalone or middleware)")
	default:
		return invalidValue(joinPath(path, "mode"), string(o.Mode), "expected standalone or middleware")
	}
}
