// Package io exports resolved dependency graphs as JSON.
//
// The document keeps the traversal order of the graph as the key order of
// the "graph" object, and lists the packages whose lookup failed:
//
//	{
//	  "root": "react",
//	  "graph": {
//	    "react": ["loose-envify"],
//	    "loose-envify": ["js-tokens"],
//	    "js-tokens": []
//	  },
//	  "failed": []
//	}
//
// (The encoder puts each list element on its own line.) The graph object is
// produced by [deps.Graph.MarshalJSON].
//
// [deps.Graph.MarshalJSON]: github.com/matzehuels/depviz/pkg/deps.Graph.MarshalJSON
package io
