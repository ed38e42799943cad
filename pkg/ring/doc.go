// Package ring arranges elements evenly around the circumference of a circle
// and keeps the arrangement consistent as elements are inserted or removed.
//
// # Overview
//
// A [Layout] owns an ordered sequence of [Item] values, one per element. The
// position index of an item maps to a slot angle; after every structural
// change all items are re-laid out for the new count in a single pass, so no
// stale angle survives an insert or remove.
//
// # Angle Distribution
//
// For n items the layout computes an [AngleInfo]:
//
//	slot = (360 - gap) / (n - 1)
//	if gap < slot { gap = 0; slot = 360 / n }
//
// A requested gap smaller than one uniform slot is not honoured and the ring
// falls back to uniform spacing. The angle for slot i is
//
//	seed + gap/2 + (i + 0.5*[gap == 0 && !alignFirst]) * slot
//
// rounded to whole degrees. See [ComputeAngleInfo] and [SlotAngle].
//
// # Rendering Strategies
//
// Items are placed by a [Strategy] chosen once per layout:
//
//   - [Declarative] publishes "--ring-angle" on each item and "--ring-radius"
//     on the container, leaving the final transform to host styling.
//   - [ComputedTransform] writes the transform directly:
//     translate(-50%, -50%) rotate(θ) translate(r) rotate(-θ).
//
// Declarative is used when the host supports custom properties (see [Probe])
// and [Options.ForceComputedTransform] is false.
//
// # Entrance Effect
//
// Items created by [Layout.Insert] carry an entering marker class until the
// host dispatches [surface.EventAnimationEnd] on the element. The completion
// hook fires at most once and deregisters itself. If the host never reports
// completion, the class and hook stay attached.
//
// # Errors
//
// The only error raised is ENVIRONMENT_UNAVAILABLE from pkg/errors, when the
// host surface is absent. Index arguments are clamped, never rejected.
//
// # Concurrency
//
// A Layout is not safe for concurrent use. Multithreaded hosts must
// serialise access.
package ring
