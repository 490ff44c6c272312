// Package proxy demonstrates the Proxy pattern: a stand-in defers loading an
// expensive real object until first use, then caches it for every later call.
//
// What
//
//   - Image is the capability both the real image and its proxy implement.
//   - NewProxy(filename) is cheap; nothing touches "disk".
//   - The first Display constructs the real image (one simulated disk load);
//     subsequent Displays reuse it. Loads() exposes the count so the deferral
//     is observable.
//
// Trade-offs
//
//	Pro: construction cost moves from program start to first use, and is
//	     skipped entirely when the object is never displayed.
//	Con: the first caller pays a hidden latency spike; the proxy must mirror
//	     the real interface forever.
//
// Usage
//
//	img := proxy.NewProxy("photo.png")
//	img.Display() // loads, then displays
//	img.Display() // cached, displays only
package proxy
