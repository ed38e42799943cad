// Package surface models the host rendering surface that ring layouts are
// drawn onto.
//
// A [Document] owns a tree of [Element] values rooted at its body. Elements
// carry a class list, inline presentation values, a measured size and a set
// of event listeners. The model is the minimum a ring needs from a host:
//
//   - tagging with presentation classes
//   - named presentation values (custom properties such as "--ring-angle",
//     or literal properties such as "transform")
//   - one-shot effect notifications delivered through [Element.Dispatch]
//   - resolved style values through [Element.ComputedStyle]
//   - bounding geometry through [Element.Height] and [Element.Width]
//   - attach, detach and insert-before within a parent
//
// # Custom Properties
//
// Whether the host honours custom properties is fixed per document by
// [Capabilities.CustomProperties]. When it does, var() references in inline
// values are resolved against the element and its ancestors. When it does
// not, custom properties are ignored by [Element.ComputedStyle] and any value
// that references them resolves to the empty string.
//
// # Concurrency
//
// A document and its elements are not safe for concurrent use.
package surface
