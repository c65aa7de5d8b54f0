// Package testutil provides test doubles for exercising wspull without a
// network.
//
// FakeTransport is a scripted Transport: tests bind a Conn to it, then
// drive the connection lifecycle directly with Open, Deliver, Fail and
// CloseWith while asserting on the frames the Conn sent. Notifications run
// synchronously on the calling goroutine, so interleavings are fully
// deterministic.
//
//	ft := testutil.NewFakeTransport()
//	conn := wspull.NewConn(ft)
//	ft.Bind(conn)
//	ft.Open()
//
//	ft.DeliverText(`{"name": "Tom", "age": 18}`)
package testutil
