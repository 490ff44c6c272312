// Package observer demonstrates the Observer pattern: a publisher holds an
// ordered list of subscribers and pushes every state change to all of them.
//
// What
//
//   - Publisher keeps subscribers in attachment order.
//   - Publish(state) stores the state, then calls Update(state) on every
//     subscriber, first-attached first.
//   - Display is a ready-made Observer that writes what it receives.
//
// Why
//
//   - The publisher never learns who is listening; observers come and go
//     without touching publishing code.
//
// Trade-offs
//
//	Pro: loose coupling between state owner and reactors; open-ended fan-out.
//	Con: update order and re-entrancy become implicit contracts; a slow
//	     observer stalls the whole notification pass; debugging "who changed
//	     what" means walking the subscriber list.
//
// Usage
//
//	p := observer.NewPublisher()
//	p.Subscribe(observer.NewDisplay("display-1", os.Stdout))
//	p.Publish("breaking news")
package observer
