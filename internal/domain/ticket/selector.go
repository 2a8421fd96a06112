package ticket

// CurrentlyCalling picks the Calling ticket with the latest calledAt across
// all counters. On equal calledAt the earlier inserted ticket wins.
func CurrentlyCalling(tickets []*Ticket) *Ticket {
	var selected *Ticket
	for _, t := range tickets {
		if t.status != StatusCalling || t.calledAt == nil {
			continue
		}
		if selected == nil || t.calledAt.After(*selected.calledAt) {
			selected = t
		}
	}
	return selected
}

// CallingAt returns the ticket currently held by counter, if any.
func CallingAt(tickets []*Ticket, counter int) *Ticket {
	for _, t := range tickets {
		if t.IsCallingAt(counter) {
			return t
		}
	}
	return nil
}

// WaitingQueue returns Waiting tickets ordered by createdAt, oldest first.
// Insertion order breaks ties.
func WaitingQueue(tickets []*Ticket) []*Ticket {
	queue := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.status == StatusWaiting {
			queue = append(queue, t)
		}
	}
	sortByCreatedAt(queue)
	return queue
}

// OldestWaiting is the head of WaitingQueue.
func OldestWaiting(tickets []*Ticket) *Ticket {
	var oldest *Ticket
	for _, t := range tickets {
		if t.status != StatusWaiting {
			continue
		}
		if oldest == nil || t.createdAt.Before(oldest.createdAt) {
			oldest = t
		}
	}
	return oldest
}
