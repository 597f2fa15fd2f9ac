/*
Package builder turns a flat collection of task descriptors into a validated
dependency graph. It is the bridge between the declarative task model (the
'task' package) and the graph queried for execution order (the 'dag' package),
and it is the only place that understands required-versus-optional dependency
semantics.

Construction is a fixed sequence of passes:

 1. Node registration: every descriptor's name becomes a graph node, in
    declaration order.

 2. Forward linking: each task's dependency entries are wired as edges from
    the task to its prerequisites. A required entry naming an undeclared task
    aborts the build; an optional one is skipped silently.

 3. Reverse linking: each task's dependent entries are wired the other way
    round, making the declaring task a prerequisite of the named target.
    The same required/optional rules apply, with their own error wording.

 4. Cycle validation: the combined hard and soft relation must be acyclic,
    otherwise the build fails and no graph is returned.

The returned graph is complete and validated; callers only query it.
*/
package builder
